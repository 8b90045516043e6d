package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutDir string `toml:"out_dir"`
	LogDir string `toml:"log_dir"`
}

// Surveys names the two canonical anomaly tables being compared.
type Surveys struct {
	YearA  string `toml:"year_a"`
	YearB  string `toml:"year_b"`
	TableA string `toml:"table_a"`
	TableB string `toml:"table_b"`
}

// Matching contains the candidate window and solver padding costs.
type Matching struct {
	Window           float64 `toml:"window"`
	RequireSameSide  bool    `toml:"require_same_side"`
	UnmatchedPenalty float64 `toml:"unmatched_penalty"`
	SentinelCost     float64 `toml:"sentinel_cost"`
}

// Weights scales each attribute term of the candidate cost.
type Weights struct {
	Distance float64 `toml:"distance"`
	Clock    float64 `toml:"clock"`
	Depth    float64 `toml:"depth"`
	Size     float64 `toml:"size"`
}

// Penalties contains the flat costs for attribute disagreements.
type Penalties struct {
	Side float64 `toml:"side"`
	Type float64 `toml:"type"`
}

// HardLimits contains the post-assignment feasibility thresholds.
type HardLimits struct {
	Position float64 `toml:"position"`
	Clock    float64 `toml:"clock"`
	Cost     float64 `toml:"cost"`
}

// Report contains configuration for growth and risk reporting.
type Report struct {
	SegmentBinFeet float64 `toml:"segment_bin_feet"`
	// GrowthYears overrides the year gap used for depth growth rates.
	// When zero, the gap is derived from the survey year labels.
	GrowthYears float64 `toml:"growth_years"`
}

// Database contains configuration for run persistence.
type Database struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for pigmatch.
//
// Sections by subsystem:
//   - Paths: artifact and log directories
//   - Surveys: canonical table locations and year labels
//   - Matching / Weights / Penalties / HardLimits: matcher parameters
//   - Report: growth and segment-risk reporting
//   - Database: SQLite run history
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Surveys    Surveys    `toml:"surveys"`
	Matching   Matching   `toml:"matching"`
	Weights    Weights    `toml:"weights"`
	Penalties  Penalties  `toml:"penalties"`
	HardLimits HardLimits `toml:"hard_limits"`
	Report     Report     `toml:"report"`
	Database   Database   `toml:"database"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/pigmatch/config.toml")
}

// Load locates, parses, and validates a configuration file. Values decode
// over Default(), so a file only overrides the keys it names. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("pigmatch.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.OutDir, err = expandPath(c.Paths.OutDir); err != nil {
		return fmt.Errorf("paths.out_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Surveys.TableA, err = expandPath(c.Surveys.TableA); err != nil {
		return fmt.Errorf("surveys.table_a: %w", err)
	}
	if c.Surveys.TableB, err = expandPath(c.Surveys.TableB); err != nil {
		return fmt.Errorf("surveys.table_b: %w", err)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		c.Database.Path = defaultDatabasePath
	}
	if c.Database.Path, err = expandPath(c.Database.Path); err != nil {
		return fmt.Errorf("database.path: %w", err)
	}
	c.Surveys.YearA = strings.TrimSpace(c.Surveys.YearA)
	c.Surveys.YearB = strings.TrimSpace(c.Surveys.YearB)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

// EnsureDirectories creates the directories a run writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.OutDir, c.Paths.LogDir}
	if c.Database.Enabled {
		dirs = append(dirs, filepath.Dir(c.Database.Path))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
