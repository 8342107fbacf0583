// Package progress turns raw completion flags and submission records into the
// percentages and "X / Y" pairs shown on the student dashboard. Everything
// here is a pure count: inputs are never mutated and zero denominators
// resolve to 0%, never NaN.
package progress

import (
	"fmt"

	"github.com/Untraddgit/untraddcareer-sub001/internal/course"
	"github.com/Untraddgit/untraddcareer-sub001/internal/submission"
)

// Stat is one completion aggregate.
type Stat struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
	Display   string  `json:"display"` // "6 / 10"
}

func newStat(completed, total int) Stat {
	// a submission for a slot the curriculum no longer defines must not push
	// completed past total
	if completed > total {
		completed = total
	}
	s := Stat{Completed: completed, Total: total}
	if total > 0 {
		s.Percent = float64(completed) / float64(total) * 100
	}
	s.Display = fmt.Sprintf("%d / %d", completed, total)
	return s
}

// Ratio computes a bare percentage with the same zero-denominator rule.
func Ratio(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// Modules aggregates week completion for a course.
func Modules(weeks []course.Week) Stat {
	done := 0
	for _, w := range weeks {
		if w.Completed {
			done++
		}
	}
	return newStat(done, len(weeks))
}

type slot struct {
	week   int
	module string
}

// Assignments aggregates submitted assignments against the course total.
// A slot (week, module) counts once no matter how many times it was
// resubmitted.
func Assignments(totalAssignments int, subs []submission.Submission) Stat {
	seen := make(map[slot]bool, len(subs))
	for _, s := range subs {
		seen[slot{s.Week, s.Module}] = true
	}
	return newStat(len(seen), totalAssignments)
}

// courseSlots lists the (week, assignment) slots the curriculum defines.
func courseSlots(c course.Course) map[slot]bool {
	out := make(map[slot]bool)
	for _, w := range c.Weeks {
		for _, a := range w.Assignments {
			out[slot{w.Number, a.Title}] = true
		}
	}
	return out
}

// Summary is the per-course progress block served to the dashboard.
type Summary struct {
	CourseName  string `json:"course_name"`
	Modules     Stat   `json:"modules"`
	Assignments Stat   `json:"assignments"`
}

// ForCourse composes both aggregates for one course. Submissions pointing at
// slots the curriculum no longer defines (the assignment was renamed or its
// week removed) are ignored rather than counted.
func ForCourse(c course.Course, subs []submission.Submission) Summary {
	valid := courseSlots(c)
	seen := make(map[slot]bool, len(subs))
	for _, s := range subs {
		k := slot{s.Week, s.Module}
		if valid[k] {
			seen[k] = true
		}
	}
	return Summary{
		CourseName:  c.Name,
		Modules:     Modules(c.Weeks),
		Assignments: newStat(len(seen), len(valid)),
	}
}
