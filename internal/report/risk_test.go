package report_test

import (
	"math"
	"testing"

	"pigmatch/internal/report"
)

func TestSegmentRiskBinsAndScores(t *testing.T) {
	families := []report.Family{
		{PosB: 120, DepthB: fp(30), DepthGrowth: fp(10)},
		{PosB: 480, DepthB: fp(50), DepthGrowth: fp(5)},
		{PosB: 510, DepthB: fp(20), DepthGrowth: fp(2)},
	}
	segments := report.SegmentRisk(families, 500)
	if len(segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(segments))
	}

	// Bin [0,500) holds two families; its depth max is 50 and growth max 10.
	first := segments[0]
	if first.StartFeet != 0 || first.EndFeet != 500 {
		t.Fatalf("top segment spans %v-%v", first.StartFeet, first.EndFeet)
	}
	if first.Families != 2 {
		t.Fatalf("top segment families = %d, want 2", first.Families)
	}
	wantScore := 0.7*50 + 0.3*10
	if math.Abs(first.RiskScore-wantScore) > 1e-12 {
		t.Fatalf("risk = %v, want %v", first.RiskScore, wantScore)
	}

	second := segments[1]
	if second.StartFeet != 500 {
		t.Fatalf("second segment starts at %v", second.StartFeet)
	}
	if first.RiskScore < second.RiskScore {
		t.Fatal("segments not sorted by descending risk")
	}
}

func TestSegmentRiskMissingDepths(t *testing.T) {
	families := []report.Family{{PosB: 10}}
	segments := report.SegmentRisk(families, 500)
	if len(segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(segments))
	}
	s := segments[0]
	if s.MaxDepth != nil || s.MaxGrowth != nil {
		t.Fatal("expected absent maxima without depth data")
	}
	if s.RiskScore != 0 {
		t.Fatalf("risk = %v, want 0", s.RiskScore)
	}
}

func TestSegmentRiskEmpty(t *testing.T) {
	if segments := report.SegmentRisk(nil, 500); len(segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(segments))
	}
}
