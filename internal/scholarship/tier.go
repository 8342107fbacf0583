package scholarship

import (
	"errors"
	"fmt"
)

// ErrScoreOutOfRange signals a test score outside [0,100]. A score out of
// range means upstream data is broken, so resolution fails instead of
// clamping.
var ErrScoreOutOfRange = errors.New("score out of range")

// Tier is the scholarship discount unlocked by a minimum test score.
type Tier struct {
	Discount int     `json:"discount"` // percent off, 0 when not eligible
	Label    string  `json:"label"`
	MinScore float64 `json:"min_score"`
}

// Ordered highest threshold first; a score qualifies for exactly one tier.
var tiers = []Tier{
	{Discount: 15, Label: "top tier", MinScore: 80},
	{Discount: 10, Label: "high performer", MinScore: 70},
	{Discount: 5, Label: "scholarship eligible", MinScore: 60},
}

var noTier = Tier{Discount: 0, Label: "not eligible", MinScore: 0}

// ResolveTier maps a test score (0-100 scale) to its tier. Thresholds are
// inclusive: a score exactly at a boundary meets that tier.
func ResolveTier(score float64) (Tier, error) {
	if score < 0 || score > 100 {
		return Tier{}, fmt.Errorf("%w: %g", ErrScoreOutOfRange, score)
	}
	for _, t := range tiers {
		if score >= t.MinScore {
			return t, nil
		}
	}
	return noTier, nil
}

// Eligible reports whether the tier carries a discount.
func (t Tier) Eligible() bool { return t.Discount > 0 }

// RetestSuggested reports whether the student should be offered a retest.
func (t Tier) RetestSuggested() bool { return t.Discount == 0 }
