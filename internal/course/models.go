package course

import (
	"errors"
	"fmt"
	"strings"
)

type Resource struct {
	Type string `json:"type"` // video, article, doc, ...
	URL  string `json:"url"`
}

type Assignment struct {
	Title    string  `json:"title"`
	MaxScore float64 `json:"max_score"`
}

// Week is one curriculum module. Locked and Completed are independent flags:
// a week may be unlocked but not completed, and vice versa after an admin
// re-lock.
type Week struct {
	Number      int          `json:"number"` // 1-based, unique within a course
	Title       string       `json:"title"`
	Topics      []string     `json:"topics,omitempty"`
	Resources   []Resource   `json:"resources,omitempty"`
	Assignments []Assignment `json:"assignments,omitempty"`
	Completed   bool         `json:"completed"`
	CompletedAt int64        `json:"completed_at,omitempty"` // unix seconds
	Locked      bool         `json:"locked"`
}

type Course struct {
	Name               string `json:"name"` // identity key
	DisplayName        string `json:"display_name,omitempty"`
	Description        string `json:"description"`
	DurationWeeks      int    `json:"duration_weeks"`
	WeeklyEffort       string `json:"weekly_effort,omitempty"` // e.g. "8-10 hours"
	LiveClassesPerWeek int    `json:"live_classes_per_week"`
	Weeks              []Week `json:"weeks"`
	Active             bool   `json:"active"`

	CreatedAt int64 `json:"created_at,omitempty"`
}

// TotalAssignments counts assignments across all weeks.
func (c Course) TotalAssignments() int {
	n := 0
	for _, w := range c.Weeks {
		n += len(w.Assignments)
	}
	return n
}

// Validate checks the soft curriculum invariants. A course with no weeks is
// allowed (curriculum not yet authored); once weeks exist, duration_weeks must
// match and week numbers must be 1..N without repeats.
func (c Course) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("course name required")
	}
	if c.DurationWeeks < 0 {
		return errors.New("duration_weeks must be non-negative")
	}
	if len(c.Weeks) == 0 {
		return nil
	}
	if c.DurationWeeks != len(c.Weeks) {
		return fmt.Errorf("duration_weeks %d does not match %d weeks", c.DurationWeeks, len(c.Weeks))
	}
	seen := make(map[int]bool, len(c.Weeks))
	for _, w := range c.Weeks {
		if w.Number < 1 || w.Number > len(c.Weeks) {
			return fmt.Errorf("week number %d out of range 1..%d", w.Number, len(c.Weeks))
		}
		if seen[w.Number] {
			return fmt.Errorf("duplicate week number %d", w.Number)
		}
		seen[w.Number] = true
		for _, a := range w.Assignments {
			if a.MaxScore <= 0 {
				return fmt.Errorf("week %d assignment %q: max_score must be positive", w.Number, a.Title)
			}
		}
	}
	return nil
}
