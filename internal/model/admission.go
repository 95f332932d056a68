package model

import (
	"strconv"
	"strings"
)

// AdmissionSubmission is an enrolment request sent from the public
// admissions form.  The panel only reviews submissions; it never edits them.
type AdmissionSubmission struct {
	ID          string            `json:"id"`
	StudentName string            `json:"studentName"`
	ParentName  string            `json:"parentName"`
	Grade       string            `json:"grade"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	SubmittedAt string            `json:"submittedAt"`
	Status      string            `json:"status"`
	Details     map[string]string `json:"details"`
}

// Grade filter buckets offered by the admissions screen.
const (
	GradeBucketPreschool = "LKG / UKG"
	GradeBucketPrimary   = "Grade 1-5"
	GradeBucketMiddle    = "Grade 6-10"
)

// AdmissionDetailKeys are the detail fields shown in the review panel, in
// display order.  They also form the trailing CSV export columns.
var AdmissionDetailKeys = []string{
	"gender", "dob", "previousSchool", "relationship", "occupation",
	"address", "city", "state", "pincode", "remarks",
}

// GradeBucket maps a grade label such as "Grade 5" or "UKG" to its filter
// bucket.  Unknown labels map to "".
func GradeBucket(grade string) string {
	g := strings.ToUpper(strings.TrimSpace(grade))
	if g == "LKG" || g == "UKG" || g == "LKG / UKG" {
		return GradeBucketPreschool
	}
	g = strings.TrimSpace(strings.TrimPrefix(g, "GRADE"))
	n, err := strconv.Atoi(g)
	if err != nil {
		return ""
	}
	switch {
	case n >= 1 && n <= 5:
		return GradeBucketPrimary
	case n >= 6 && n <= 10:
		return GradeBucketMiddle
	}
	return ""
}

// MatchesGrade reports whether the submission falls into bucket.  "All" and
// the empty string match everything.
func (a AdmissionSubmission) MatchesGrade(bucket string) bool {
	if bucket == "" || bucket == FilterAll {
		return true
	}
	return GradeBucket(a.Grade) == bucket
}
