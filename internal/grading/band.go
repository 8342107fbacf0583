// Package grading holds the one threshold set used by every score badge.
// Tabs must never disagree on the color of the same score, so the cut points
// live here and nowhere else.
package grading

// Band is the qualitative bucket a score falls into.
type Band string

const (
	BandGood    Band = "good"    // >= 70% of max
	BandWarn    Band = "warn"    // >= 40% and < 70%
	BandBad     Band = "bad"     // < 40%
	BandUnknown Band = "unknown" // absent score or unusable max
)

const (
	goodCutoff = 0.70
	warnCutoff = 0.40
)

// Classify bands a raw score against its max. A nil score (not yet graded)
// or a non-positive max yields BandUnknown; scores are always compared as a
// fraction of max, never raw.
func Classify(score *float64, maxScore float64) Band {
	if score == nil || maxScore <= 0 {
		return BandUnknown
	}
	frac := *score / maxScore
	switch {
	case frac >= goodCutoff:
		return BandGood
	case frac >= warnCutoff:
		return BandWarn
	default:
		return BandBad
	}
}

// ClassifyPercent bands a score already on a 0-100 scale.
func ClassifyPercent(percent float64) Band {
	p := percent
	return Classify(&p, 100)
}
