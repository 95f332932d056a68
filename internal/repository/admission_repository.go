package repository

import (
	"context"
	"strings"

	"github.com/iliyamo/school-admin/internal/model"
)

// AdmissionRepo exposes the enrolment submissions read-only.  Submissions
// arrive through the public website form, which lives outside this
// service; the panel never creates or edits them.
type AdmissionRepo struct {
	c *Collection[model.AdmissionSubmission]
}

func NewAdmissionRepo(seed []model.AdmissionSubmission) *AdmissionRepo {
	return &AdmissionRepo{
		c: NewCollection("submission", Prepend, func(a *model.AdmissionSubmission) *string { return &a.ID }, seed),
	}
}

func (r *AdmissionRepo) List(ctx context.Context) ([]model.AdmissionSubmission, error) {
	return r.c.List(ctx)
}

// Find keeps submissions in the grade bucket whose student name, parent
// name or email contains q.
func (r *AdmissionRepo) Find(ctx context.Context, bucket, q string) ([]model.AdmissionSubmission, error) {
	all, err := r.c.List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]model.AdmissionSubmission, 0, len(all))
	for _, a := range all {
		if !a.MatchesGrade(bucket) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(a.StudentName), q) &&
			!strings.Contains(strings.ToLower(a.ParentName), q) &&
			!strings.Contains(strings.ToLower(a.Email), q) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AdmissionRepo) Get(ctx context.Context, id string) (model.AdmissionSubmission, error) {
	return r.c.Get(ctx, id)
}

func (r *AdmissionRepo) Count() int { return r.c.Len() }
