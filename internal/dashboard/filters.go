// Package dashboard merges raw collections and derived metrics into the
// view-ready aggregates behind the admin and student dashboards. Helpers here
// are pure and order-preserving; nothing mutates its inputs.
package dashboard

import (
	"strings"

	"github.com/Untraddgit/untraddcareer-sub001/internal/grading"
	"github.com/Untraddgit/untraddcareer-sub001/internal/scholarship"
	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
	"github.com/Untraddgit/untraddcareer-sub001/internal/submission"
	"github.com/Untraddgit/untraddcareer-sub001/internal/testresult"
)

// Filter is the tri-state scholarship filter on the admin test-results tab.
type Filter string

const (
	FilterAll           Filter = "all"
	FilterHighPerformer Filter = "high"        // score >= 70
	FilterScholarship   Filter = "scholarship" // score >= 60
)

const (
	highPerformerMin = 70
	scholarshipMin   = 60
)

// ResultRow is one admin-table row: a test result joined with its student.
type ResultRow struct {
	ResultID     string       `json:"result_id"`
	StudentID    string       `json:"student_id"`
	StudentName  string       `json:"student_name"`
	Score        float64      `json:"score"`
	TimeSpentSec int          `json:"time_spent_sec"`
	CompletedAt  int64        `json:"completed_at"`
	Band         grading.Band `json:"band"`
}

// BuildResultRows joins results with student names and attaches the score
// band. Results keep their input order; a missing student leaves the name
// empty rather than dropping the row.
func BuildResultRows(students []student.Student, results []testresult.TestResult) []ResultRow {
	names := make(map[string]string, len(students))
	for _, st := range students {
		names[st.ID] = st.FullName()
	}
	rows := make([]ResultRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, ResultRow{
			ResultID:     r.ID,
			StudentID:    r.StudentID,
			StudentName:  names[r.StudentID],
			Score:        r.Score,
			TimeSpentSec: r.TimeSpentSec,
			CompletedAt:  r.CompletedAt,
			Band:         grading.ClassifyPercent(r.Score),
		})
	}
	return rows
}

// SearchRows returns rows whose student name or id contains term,
// case-insensitively. An empty term returns the input unchanged.
func SearchRows(rows []ResultRow, term string) []ResultRow {
	term = strings.TrimSpace(term)
	if term == "" {
		return rows
	}
	q := strings.ToLower(term)
	out := make([]ResultRow, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.StudentName), q) ||
			strings.Contains(strings.ToLower(r.StudentID), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterRows applies the tri-state scholarship filter. Unknown filter values
// behave like FilterAll.
func FilterRows(rows []ResultRow, f Filter) []ResultRow {
	var min float64
	switch f {
	case FilterHighPerformer:
		min = highPerformerMin
	case FilterScholarship:
		min = scholarshipMin
	default:
		return rows
	}
	out := make([]ResultRow, 0, len(rows))
	for _, r := range rows {
		if r.Score >= min {
			out = append(out, r)
		}
	}
	return out
}

// ScholarshipView is the student scholarship tab: latest result, resolved
// tier, and the retest affordance.
type ScholarshipView struct {
	Result      *testresult.TestResult `json:"result,omitempty"`
	Tier        *scholarship.Tier      `json:"tier,omitempty"`
	Eligible    bool                   `json:"eligible"`
	RetestOffer bool                   `json:"retest_offer"`
	Band        grading.Band           `json:"band"`
}

// BuildScholarshipView resolves the latest result into a tier. A nil result
// (test not taken yet) yields an empty view with the retest offer off and the
// band unknown.
func BuildScholarshipView(latest *testresult.TestResult) (ScholarshipView, error) {
	if latest == nil {
		return ScholarshipView{Band: grading.BandUnknown}, nil
	}
	tier, err := scholarship.ResolveTier(latest.Score)
	if err != nil {
		return ScholarshipView{}, err
	}
	return ScholarshipView{
		Result:      latest,
		Tier:        &tier,
		Eligible:    tier.Eligible(),
		RetestOffer: tier.RetestSuggested(),
		Band:        grading.ClassifyPercent(latest.Score),
	}, nil
}

// GroupSubmissions buckets submissions by student id for tabular rendering.
// Within each student's list the input (insertion) order is preserved.
func GroupSubmissions(subs []submission.Submission) map[string][]submission.Submission {
	out := make(map[string][]submission.Submission)
	for _, s := range subs {
		out[s.StudentID] = append(out[s.StudentID], s)
	}
	return out
}
