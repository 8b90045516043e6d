package testsupport

import (
	"os"
	"testing"

	"pigmatch/internal/config"
)

// WriteCanonicalTables writes small canonical CSV tables to the config's
// survey table paths so loader-driven tests have real files to read.
func WriteCanonicalTables(t testing.TB, cfg *config.Config) {
	t.Helper()

	const tableA = `row_id,year,pos_ft,clock_hr,side,depth_pct,len_in,wid_in,type
0,2015,100.0,6.0,ID,20,1.5,1.0,Metal Loss
1,2015,305.0,3.0,OD,35,2.0,1.2,Metal Loss
2,2015,900.0,,,,,,Dent
`
	const tableB = `row_id,year,pos_ft,clock_hr,side,depth_pct,len_in,wid_in,type
0,2022,100.4,6.1,ID,27,1.6,1.1,Metal Loss
1,2022,305.8,3.2,OD,44,2.4,1.4,Metal Loss
2,2022,1500.0,,,,,,Dent
`
	if err := os.WriteFile(cfg.Surveys.TableA, []byte(tableA), 0o644); err != nil {
		t.Fatalf("write table A: %v", err)
	}
	if err := os.WriteFile(cfg.Surveys.TableB, []byte(tableB), 0o644); err != nil {
		t.Fatalf("write table B: %v", err)
	}
}
