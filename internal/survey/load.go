package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Canonical table column names. Tables produced by the extraction tooling may
// carry extra columns (seam distance, seam clock); those are ignored here.
const (
	colRowID = "row_id"
	colYear  = "year"
	colPos   = "pos_ft"
	colClock = "clock_hr"
	colSide  = "side"
	colDepth = "depth_pct"
	colLen   = "len_in"
	colWid   = "wid_in"
	colType  = "type"
)

// LoadFile reads a canonical anomaly table from a CSV file.
func LoadFile(path, year string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open canonical table: %w", err)
	}
	defer f.Close()

	set, err := Load(f, year)
	if err != nil {
		return nil, fmt.Errorf("load canonical table %s: %w", path, err)
	}
	return set, nil
}

// Load parses a canonical anomaly table. The first record is the header;
// rows without a parseable position are skipped. When the table carries no
// row_id column, IDs are assigned sequentially in row order.
func Load(r io.Reader, year string) (*Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	if _, ok := idx[colPos]; !ok {
		return nil, fmt.Errorf("canonical table missing %q column", colPos)
	}

	var anomalies []Anomaly
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		pos := parseOptionalFloat(field(record, idx, colPos))
		if pos == nil {
			continue
		}

		a := Anomaly{
			Year:     year,
			Position: *pos,
			Clock:    parseOptionalFloat(field(record, idx, colClock)),
			Side:     NormalizeSide(field(record, idx, colSide)),
			Depth:    parseOptionalFloat(field(record, idx, colDepth)),
			Length:   parseOptionalFloat(field(record, idx, colLen)),
			Width:    parseOptionalFloat(field(record, idx, colWid)),
			Type:     strings.TrimSpace(field(record, idx, colType)),
		}
		if y := field(record, idx, colYear); strings.TrimSpace(y) != "" {
			a.Year = strings.TrimSpace(y)
		}
		if raw := strings.TrimSpace(field(record, idx, colRowID)); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row_id %q: %w", raw, err)
			}
			a.ID = id
		} else {
			a.ID = int64(len(anomalies))
		}
		anomalies = append(anomalies, a)
	}

	return NewSet(year, anomalies), nil
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// parseOptionalFloat coerces a raw cell to a float. Empty cells yield nil.
// Thousands separators are stripped and hh:mm clock readings convert to
// decimal hours, matching the upstream extraction rules.
func parseOptionalFloat(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return &v
	}
	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		h, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil
		}
		m := 0.0
		if len(parts) == 2 && parts[1] != "" {
			m, err = strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil
			}
		}
		v := h + m/60.0
		return &v
	}
	return nil
}

// NormalizeSide uppercases an ID/OD indicator, returning "" when absent.
func NormalizeSide(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
