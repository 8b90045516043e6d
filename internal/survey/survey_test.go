package survey_test

import (
	"strings"
	"testing"

	"pigmatch/internal/survey"
)

func f(v float64) *float64 { return &v }

func TestClockDeltaWrapsAroundDial(t *testing.T) {
	tests := []struct {
		name string
		a, b *float64
		want float64
		ok   bool
	}{
		{name: "same position", a: f(3), b: f(3), want: 0, ok: true},
		{name: "simple difference", a: f(2), b: f(5), want: 3, ok: true},
		{name: "wraps past twelve", a: f(11), b: f(1), want: 2, ok: true},
		{name: "half dial is maximum", a: f(0), b: f(6), want: 6, ok: true},
		{name: "first absent", a: nil, b: f(6), ok: false},
		{name: "second absent", a: f(6), b: nil, ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := survey.ClockDelta(tc.a, tc.b)
			if ok != tc.ok {
				t.Fatalf("ClockDelta ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ClockDelta = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClockDeltaSymmetricAndBounded(t *testing.T) {
	values := []float64{0, 0.5, 1, 3, 5.75, 6, 7.25, 11, 11.9, 12}
	for _, a := range values {
		for _, b := range values {
			ab, _ := survey.ClockDelta(f(a), f(b))
			ba, _ := survey.ClockDelta(f(b), f(a))
			if ab != ba {
				t.Fatalf("ClockDelta(%v,%v)=%v but ClockDelta(%v,%v)=%v", a, b, ab, b, a, ba)
			}
			if ab < 0 || ab > 6 {
				t.Fatalf("ClockDelta(%v,%v)=%v outside [0,6]", a, b, ab)
			}
		}
	}
}

func TestSameTypeFoldsCaseAndWhitespace(t *testing.T) {
	if !survey.SameType("  Metal Loss ", "metal loss") {
		t.Fatal("expected normalized labels to compare equal")
	}
	if survey.SameType("dent", "metal loss") {
		t.Fatal("expected distinct labels to compare unequal")
	}
}

func TestLoadParsesCanonicalTable(t *testing.T) {
	const table = `row_id,year,pos_ft,clock_hr,side,depth_pct,len_in,wid_in,type
0,2015,100.5,6:30,id,12.5,1.2,0.8,Metal Loss
1,2015,"1,250.0",,,,,,
2,2015,,3.0,OD,5,,,Dent
`
	set, err := survey.Load(strings.NewReader(table), "2015")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected row without position dropped, got %d rows", set.Len())
	}

	first := set.ByID(0)
	if first == nil {
		t.Fatal("missing anomaly 0")
	}
	if first.Position != 100.5 {
		t.Fatalf("position = %v, want 100.5", first.Position)
	}
	if first.Clock == nil || *first.Clock != 6.5 {
		t.Fatalf("clock = %v, want 6.5 from hh:mm", first.Clock)
	}
	if first.Side != "ID" {
		t.Fatalf("side = %q, want uppercased ID", first.Side)
	}
	if first.Depth == nil || *first.Depth != 12.5 {
		t.Fatalf("depth = %v, want 12.5", first.Depth)
	}

	second := set.ByID(1)
	if second == nil {
		t.Fatal("missing anomaly 1")
	}
	if second.Position != 1250.0 {
		t.Fatalf("position = %v, want comma-stripped 1250", second.Position)
	}
	if second.Clock != nil || second.Depth != nil || second.Length != nil || second.Width != nil {
		t.Fatal("expected empty optional cells to stay absent")
	}
	if second.Side != "" || second.Type != "" {
		t.Fatal("expected empty strings for absent side and type")
	}
}

func TestLoadWithoutRowIDAssignsSequential(t *testing.T) {
	const table = `pos_ft,side
10.0,ID
20.0,OD
`
	set, err := survey.Load(strings.NewReader(table), "2022")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, a := range set.Anomalies {
		if a.ID != int64(i) {
			t.Fatalf("anomaly %d has ID %d", i, a.ID)
		}
		if a.Year != "2022" {
			t.Fatalf("anomaly %d year = %q", i, a.Year)
		}
	}
}

func TestLoadRequiresPositionColumn(t *testing.T) {
	_, err := survey.Load(strings.NewReader("row_id,clock_hr\n0,3.0\n"), "2015")
	if err == nil {
		t.Fatal("expected error for table without pos_ft")
	}
}
