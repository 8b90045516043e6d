package config

const (
	defaultOutDir           = "out"
	defaultLogDir           = "~/.local/share/pigmatch/logs"
	defaultDatabasePath     = "~/.local/share/pigmatch/runs.db"
	defaultYearA            = "2015"
	defaultYearB            = "2022"
	defaultWindow           = 5.0
	defaultUnmatchedPenalty = 20.0
	defaultSentinelCost     = 1e9
	defaultWeightDistance   = 1.0
	defaultWeightClock      = 0.3
	defaultWeightDepth      = 0.05
	defaultWeightSize       = 0.02
	defaultPenaltySide      = 5.0
	defaultPenaltyType      = 2.0
	defaultLimitPosition    = 5.0
	defaultLimitClock       = 3.0
	defaultLimitCost        = 12.0
	defaultSegmentBinFeet   = 500.0
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutDir: defaultOutDir,
			LogDir: defaultLogDir,
		},
		Surveys: Surveys{
			YearA:  defaultYearA,
			YearB:  defaultYearB,
			TableA: "out/canonical_2015.csv",
			TableB: "out/canonical_2022.csv",
		},
		Matching: Matching{
			Window:           defaultWindow,
			RequireSameSide:  false,
			UnmatchedPenalty: defaultUnmatchedPenalty,
			SentinelCost:     defaultSentinelCost,
		},
		Weights: Weights{
			Distance: defaultWeightDistance,
			Clock:    defaultWeightClock,
			Depth:    defaultWeightDepth,
			Size:     defaultWeightSize,
		},
		Penalties: Penalties{
			Side: defaultPenaltySide,
			Type: defaultPenaltyType,
		},
		HardLimits: HardLimits{
			Position: defaultLimitPosition,
			Clock:    defaultLimitClock,
			Cost:     defaultLimitCost,
		},
		Report: Report{
			SegmentBinFeet: defaultSegmentBinFeet,
		},
		Database: Database{
			Enabled: true,
			Path:    defaultDatabasePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
