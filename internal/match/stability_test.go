package match_test

import (
	"testing"

	"pigmatch/internal/match"
	"pigmatch/internal/survey"
)

func TestOverlap(t *testing.T) {
	pair := func(a, b int64) match.Match { return match.Match{AID: a, BID: b} }
	tests := []struct {
		name        string
		base, probe []match.Match
		want        float64
	}{
		{name: "both empty", want: 1.0},
		{name: "base empty", probe: []match.Match{pair(0, 0)}, want: 0.0},
		{name: "probe empty", base: []match.Match{pair(0, 0)}, want: 0.0},
		{
			name:  "identical",
			base:  []match.Match{pair(0, 0), pair(1, 1)},
			probe: []match.Match{pair(0, 0), pair(1, 1)},
			want:  1.0,
		},
		{
			name:  "disjoint",
			base:  []match.Match{pair(0, 0)},
			probe: []match.Match{pair(0, 1)},
			want:  0.0,
		},
		{
			name:  "partial",
			base:  []match.Match{pair(0, 0), pair(1, 1), pair(2, 2)},
			probe: []match.Match{pair(0, 0), pair(1, 3)},
			want:  0.25, // 1 shared of 4 distinct pairs
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := match.Overlap(tc.base, tc.probe); got != tc.want {
				t.Fatalf("Overlap = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStabilityStableDataset(t *testing.T) {
	// Matches well inside the window are insensitive to a 5% widening,
	// so the probe reproduces the base matching exactly.
	a := setOf("2015",
		survey.Anomaly{ID: 0, Position: 100},
		survey.Anomaly{ID: 1, Position: 300},
	)
	b := setOf("2022",
		survey.Anomaly{ID: 0, Position: 100.5},
		survey.Anomaly{ID: 1, Position: 300.5},
	)
	cfg := match.DefaultConfig()

	base, err := match.Run(a, b, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	score, probe, err := match.Stability(a, b, cfg, base, nil)
	if err != nil {
		t.Fatalf("Stability: %v", err)
	}
	if score != 1.0 {
		t.Fatalf("stability = %v, want 1.0", score)
	}
	if probe.Config.Window != cfg.Window*match.ProbeWindowScale {
		t.Fatalf("probe window = %v, want scaled", probe.Config.Window)
	}
	// The caller's config is untouched.
	if base.Config.Window != cfg.Window {
		t.Fatalf("base window mutated to %v", base.Config.Window)
	}
}

func TestStabilityEmptyDataset(t *testing.T) {
	a := setOf("2015")
	b := setOf("2022")
	cfg := match.DefaultConfig()

	base, err := match.Run(a, b, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	score, _, err := match.Stability(a, b, cfg, base, nil)
	if err != nil {
		t.Fatalf("Stability: %v", err)
	}
	if score != 1.0 {
		t.Fatalf("stability = %v, want 1.0 for two empty matchings", score)
	}
}

func TestStabilityWindowSensitiveDataset(t *testing.T) {
	// The B anomaly sits just outside the base window but inside the
	// probed one, so the two matchings disagree entirely.
	a := setOf("2015", survey.Anomaly{ID: 0, Position: 100})
	b := setOf("2022", survey.Anomaly{ID: 0, Position: 105.1})
	cfg := match.DefaultConfig()
	cfg.HardLimits.Position = 6.0 // keep the resolver out of the way

	base, err := match.Run(a, b, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(base.Matches) != 0 {
		t.Fatalf("expected no base matches, got %+v", base.Matches)
	}
	score, probe, err := match.Stability(a, b, cfg, base, nil)
	if err != nil {
		t.Fatalf("Stability: %v", err)
	}
	if len(probe.Matches) != 1 {
		t.Fatalf("expected probe to match inside widened window, got %+v", probe.Matches)
	}
	if score != 0.0 {
		t.Fatalf("stability = %v, want 0.0", score)
	}
}
