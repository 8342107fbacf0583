package grading

import "testing"

func f(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		score *float64
		max   float64
		want  Band
	}{
		{"eight of ten is good", f(8), 10, BandGood},
		{"exactly seventy percent is good", f(7), 10, BandGood},
		{"just under seventy percent warns", f(6.9), 10, BandWarn},
		{"exactly forty percent warns", f(4), 10, BandWarn},
		{"just under forty percent is bad", f(3.9), 10, BandBad},
		{"zero is bad", f(0), 10, BandBad},
		{"ungraded is unknown", nil, 10, BandUnknown},
		{"zero max is unknown", f(5), 0, BandUnknown},
		{"negative max is unknown", f(5), -1, BandUnknown},
		{"normalized not raw", f(35), 50, BandGood}, // 70% of 50
	}
	for _, c := range cases {
		if got := Classify(c.score, c.max); got != c.want {
			t.Errorf("%s: Classify = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestClassifyPercent(t *testing.T) {
	if got := ClassifyPercent(75); got != BandGood {
		t.Errorf("ClassifyPercent(75) = %q, want good", got)
	}
	if got := ClassifyPercent(55); got != BandWarn {
		t.Errorf("ClassifyPercent(55) = %q, want warn", got)
	}
	if got := ClassifyPercent(10); got != BandBad {
		t.Errorf("ClassifyPercent(10) = %q, want bad", got)
	}
}
