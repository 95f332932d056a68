package repository

import (
	"context"

	"github.com/iliyamo/school-admin/internal/model"
)

// StaffRepo stores faculty members in insertion order; reads come back
// sorted by display order.
type StaffRepo struct {
	c *Collection[model.Staff]
}

func NewStaffRepo(seed []model.Staff) *StaffRepo {
	return &StaffRepo{
		c: NewCollection("staff member", Append, func(s *model.Staff) *string { return &s.ID }, seed),
	}
}

// List returns every member sorted by Order.
func (r *StaffRepo) List(ctx context.Context) ([]model.Staff, error) {
	all, err := r.c.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.SortStaff(all), nil
}

// Active returns the active members sorted by Order.
func (r *StaffRepo) Active(ctx context.Context) ([]model.Staff, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Staff, 0, len(all))
	for _, s := range all {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

// NextOrder is the default display order for a new member.
func (r *StaffRepo) NextOrder() int { return r.c.Len() + 1 }

func (r *StaffRepo) Get(ctx context.Context, id string) (model.Staff, error) {
	return r.c.Get(ctx, id)
}

// Create appends s.  An Order below 1 is replaced by the list length + 1,
// computed under the write lock.
func (r *StaffRepo) Create(ctx context.Context, s model.Staff) (model.Staff, error) {
	return r.c.InsertIf(ctx, s, func(all []model.Staff, s *model.Staff) error {
		if s.Order < 1 {
			s.Order = len(all) + 1
		}
		return nil
	})
}

// Save replaces the member with the given id.  An Order below 1 keeps the
// stored order; the merge happens under the write lock.
func (r *StaffRepo) Save(ctx context.Context, id string, s model.Staff) (model.Staff, error) {
	return r.c.Update(ctx, id, func(cur *model.Staff) error {
		if s.Order < 1 {
			s.Order = cur.Order
		}
		*cur = s
		return nil
	})
}

// ToggleActive flips IsActive.
func (r *StaffRepo) ToggleActive(ctx context.Context, id string) (model.Staff, error) {
	return r.c.Update(ctx, id, func(s *model.Staff) error {
		s.IsActive = !s.IsActive
		return nil
	})
}

func (r *StaffRepo) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, id)
}

func (r *StaffRepo) Count() int { return r.c.Len() }
