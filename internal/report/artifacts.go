package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"pigmatch/internal/fileutil"
)

// Artifact file names within the output directory. Unmatched tables carry
// their survey year, e.g. unmatched_2015.csv.
const (
	matchesFile     = "matches.csv"
	familiesFile    = "families.csv"
	segmentRiskFile = "segment_risk.csv"
	kpisFile        = "kpis.json"
)

// WriteArtifacts writes the evaluation's CSV tables and KPI snapshot into
// dir, which must exist.
func WriteArtifacts(dir string, eval *Evaluation) error {
	if err := writeMatches(filepath.Join(dir, matchesFile), eval); err != nil {
		return err
	}
	nameA := fmt.Sprintf("unmatched_%s.csv", eval.YearA)
	if err := writeIDList(filepath.Join(dir, nameA), "anomaly_id_"+eval.YearA, eval.Base.UnmatchedA); err != nil {
		return err
	}
	nameB := fmt.Sprintf("unmatched_%s.csv", eval.YearB)
	if err := writeIDList(filepath.Join(dir, nameB), "anomaly_id_"+eval.YearB, eval.Base.UnmatchedB); err != nil {
		return err
	}
	if err := writeFamilies(filepath.Join(dir, familiesFile), eval); err != nil {
		return err
	}
	if err := writeSegments(filepath.Join(dir, segmentRiskFile), eval.Segments); err != nil {
		return err
	}
	return writeKPIs(filepath.Join(dir, kpisFile), eval.KPIs)
}

func writeMatches(path string, eval *Evaluation) error {
	header := []string{"anomaly_id_" + eval.YearA, "anomaly_id_" + eval.YearB, "dx", "dclock", "cost"}
	rows := make([][]string, 0, len(eval.Base.Matches))
	for _, m := range eval.Base.Matches {
		rows = append(rows, []string{
			strconv.FormatInt(m.AID, 10),
			strconv.FormatInt(m.BID, 10),
			formatFloat(m.PosDelta),
			formatOptional(m.ClockDelta),
			formatFloat(m.Cost),
		})
	}
	return writeCSV(path, header, rows)
}

func writeIDList(path, header string, ids []int64) error {
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []string{strconv.FormatInt(id, 10)})
	}
	return writeCSV(path, []string{header}, rows)
}

func writeFamilies(path string, eval *Evaluation) error {
	yA, yB := eval.YearA, eval.YearB
	header := []string{
		"defect_family_id",
		"anomaly_id_" + yA, "anomaly_id_" + yB,
		"pos_" + yA, "pos_" + yB, "dx",
		"clock_" + yA, "clock_" + yB,
		"depth_" + yA, "depth_" + yB,
		"depth_growth", "depth_growth_rate_per_year",
		"len_" + yA, "len_" + yB,
		"wid_" + yA, "wid_" + yB,
		"side_" + yA, "side_" + yB,
		"type_" + yA, "type_" + yB,
		"cost",
	}
	rows := make([][]string, 0, len(eval.Families))
	for _, f := range eval.Families {
		rows = append(rows, []string{
			strconv.FormatInt(f.ID, 10),
			strconv.FormatInt(f.AID, 10),
			strconv.FormatInt(f.BID, 10),
			formatFloat(f.PosA),
			formatFloat(f.PosB),
			formatFloat(f.PosDelta),
			formatOptional(f.ClockA),
			formatOptional(f.ClockB),
			formatOptional(f.DepthA),
			formatOptional(f.DepthB),
			formatOptional(f.DepthGrowth),
			formatOptional(f.GrowthRate),
			formatOptional(f.LengthA),
			formatOptional(f.LengthB),
			formatOptional(f.WidthA),
			formatOptional(f.WidthB),
			f.SideA,
			f.SideB,
			f.TypeA,
			f.TypeB,
			formatFloat(f.Cost),
		})
	}
	return writeCSV(path, header, rows)
}

func writeSegments(path string, segments []Segment) error {
	header := []string{"segment_start_ft", "segment_end_ft", "families", "max_depth_pct", "max_growth_pct", "risk_score"}
	rows := make([][]string, 0, len(segments))
	for _, s := range segments {
		rows = append(rows, []string{
			formatFloat(s.StartFeet),
			formatFloat(s.EndFeet),
			strconv.Itoa(s.Families),
			formatOptional(s.MaxDepth),
			formatOptional(s.MaxGrowth),
			formatFloat(s.RiskScore),
		})
	}
	return writeCSV(path, header, rows)
}

func writeKPIs(path string, kpis KPIs) error {
	data, err := json.MarshalIndent(kpis, "", "  ")
	if err != nil {
		return fmt.Errorf("encode kpis: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, append(data, '\n')); err != nil {
		return fmt.Errorf("write kpis: %w", err)
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	err := fileutil.WriteAtomic(path, func(out io.Writer) error {
		w := csv.NewWriter(out)
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		for _, row := range rows {
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
