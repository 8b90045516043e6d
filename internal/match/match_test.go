package match_test

import (
	"reflect"
	"testing"

	"pigmatch/internal/match"
	"pigmatch/internal/survey"
)

func fp(v float64) *float64 { return &v }

func setOf(year string, anomalies ...survey.Anomaly) *survey.Set {
	for i := range anomalies {
		anomalies[i].Year = year
	}
	return survey.NewSet(year, anomalies)
}

func TestRunSinglePair(t *testing.T) {
	a := setOf("2015", survey.Anomaly{ID: 0, Position: 100.0})
	b := setOf("2022", survey.Anomaly{ID: 0, Position: 101.0})
	cfg := match.DefaultConfig()

	res, err := match.Run(a, b, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(res.Matches))
	}
	m := res.Matches[0]
	if m.AID != 0 || m.BID != 0 {
		t.Fatalf("unexpected pair %+v", m)
	}
	if m.PosDelta != 1.0 {
		t.Fatalf("pos delta = %v, want 1.0", m.PosDelta)
	}
	if m.Cost != cfg.Weights.Distance*1.0 {
		t.Fatalf("cost = %v, want distance weight", m.Cost)
	}
	if m.ClockDelta != nil {
		t.Fatal("expected absent clock delta")
	}
	if len(res.UnmatchedA) != 0 || len(res.UnmatchedB) != 0 {
		t.Fatalf("unexpected unmatched sets %v / %v", res.UnmatchedA, res.UnmatchedB)
	}
}

func TestRunDistantAnomaliesStayUnmatched(t *testing.T) {
	a := setOf("2015", survey.Anomaly{ID: 0, Position: 100.0})
	b := setOf("2022", survey.Anomaly{ID: 0, Position: 200.0})

	res, err := match.Run(a, b, match.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Matches) != 0 {
		t.Fatalf("expected no matches, got %+v", res.Matches)
	}
	if !reflect.DeepEqual(res.UnmatchedA, []int64{0}) {
		t.Fatalf("unmatched A = %v", res.UnmatchedA)
	}
	if !reflect.DeepEqual(res.UnmatchedB, []int64{0}) {
		t.Fatalf("unmatched B = %v", res.UnmatchedB)
	}
}

func TestRunRequireSameSide(t *testing.T) {
	a := setOf("2015", survey.Anomaly{ID: 0, Position: 100.0, Side: "ID"})
	b := setOf("2022", survey.Anomaly{ID: 0, Position: 100.5, Side: "OD"})
	cfg := match.DefaultConfig()
	cfg.RequireSameSide = true

	res, err := match.Run(a, b, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Matches) != 0 {
		t.Fatalf("expected side mismatch to prevent matching, got %+v", res.Matches)
	}
}

func TestRunHardLimitDemotesOptimalPair(t *testing.T) {
	// With a widened window the pair is the solver's optimum (cost 6 is
	// well under the cost limit), but its raw position delta exceeds the
	// position hard limit, so the resolver rejects it.
	a := setOf("2015", survey.Anomaly{ID: 0, Position: 100.0})
	b := setOf("2022", survey.Anomaly{ID: 0, Position: 106.0})
	cfg := match.DefaultConfig()
	cfg.Window = 10.0

	res, err := match.Run(a, b, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Matches) != 0 {
		t.Fatalf("expected hard limit to demote pair, got %+v", res.Matches)
	}
	if !reflect.DeepEqual(res.UnmatchedA, []int64{0}) {
		t.Fatalf("unmatched A = %v", res.UnmatchedA)
	}
	if !reflect.DeepEqual(res.UnmatchedB, []int64{0}) {
		t.Fatalf("unmatched B = %v", res.UnmatchedB)
	}
	if res.LimitRejected != 1 {
		t.Fatalf("limit rejected = %d, want 1", res.LimitRejected)
	}
}

func TestRunClockLimitDemotes(t *testing.T) {
	a := setOf("2015", survey.Anomaly{ID: 0, Position: 100.0, Clock: fp(12)})
	b := setOf("2022", survey.Anomaly{ID: 0, Position: 100.0, Clock: fp(8)})
	cfg := match.DefaultConfig() // clock limit 3.0, delta is 4.0

	res, err := match.Run(a, b, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Matches) != 0 {
		t.Fatalf("expected clock limit to demote pair, got %+v", res.Matches)
	}
}

func TestRunCountsConserved(t *testing.T) {
	a := setOf("2015",
		survey.Anomaly{ID: 0, Position: 100, Clock: fp(3), Depth: fp(10)},
		survey.Anomaly{ID: 1, Position: 101, Clock: fp(9)},
		survey.Anomaly{ID: 2, Position: 250},
		survey.Anomaly{ID: 3, Position: 400, Side: "ID"},
	)
	b := setOf("2022",
		survey.Anomaly{ID: 0, Position: 100.4, Clock: fp(3.2), Depth: fp(14)},
		survey.Anomaly{ID: 1, Position: 101.8, Clock: fp(8.5)},
		survey.Anomaly{ID: 2, Position: 620},
		survey.Anomaly{ID: 3, Position: 399.1, Side: "ID"},
		survey.Anomaly{ID: 4, Position: 402, Side: "OD"},
	)

	res, err := match.Run(a, b, match.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := len(res.Matches) + len(res.UnmatchedA); got != a.Len() {
		t.Fatalf("matched+unmatchedA = %d, want %d", got, a.Len())
	}
	if got := len(res.Matches) + len(res.UnmatchedB); got != b.Len() {
		t.Fatalf("matched+unmatchedB = %d, want %d", got, b.Len())
	}

	claimed := make(map[int64]bool)
	for _, m := range res.Matches {
		if claimed[m.BID] {
			t.Fatalf("B-id %d claimed twice", m.BID)
		}
		claimed[m.BID] = true
	}
}

func TestRunIdempotent(t *testing.T) {
	a := setOf("2015",
		survey.Anomaly{ID: 0, Position: 100, Clock: fp(6)},
		survey.Anomaly{ID: 1, Position: 100, Clock: fp(6)},
		survey.Anomaly{ID: 2, Position: 103},
	)
	b := setOf("2022",
		survey.Anomaly{ID: 0, Position: 100.5, Clock: fp(6)},
		survey.Anomaly{ID: 1, Position: 100.5, Clock: fp(6)},
		survey.Anomaly{ID: 2, Position: 102.5},
	)
	cfg := match.DefaultConfig()

	first, err := match.Run(a, b, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := match.Run(a, b, cfg, nil)
		if err != nil {
			t.Fatalf("Run #%d: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst %+v\nagain %+v", i, first, again)
		}
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	a := setOf("2015")
	b := setOf("2022")
	cfg := match.DefaultConfig()
	cfg.Window = -1

	if _, err := match.Run(a, b, cfg, nil); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestRunDegenerateComponents(t *testing.T) {
	// Only-A and only-B singletons still solve via padding and come out
	// unmatched.
	a := setOf("2015", survey.Anomaly{ID: 0, Position: 10})
	b := setOf("2022")
	res, err := match.Run(a, b, match.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(res.UnmatchedA, []int64{0}) || len(res.Matches) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}
