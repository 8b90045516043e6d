package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. Matcher parameter checks are
// mirrored by the matching core; rejecting bad values here keeps the
// failure at the boundary instead of deep inside a solve.
func (c *Config) Validate() error {
	if err := c.validateSurveys(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSurveys() error {
	if c.Surveys.YearA == "" || c.Surveys.YearB == "" {
		return errors.New("surveys.year_a and surveys.year_b are required")
	}
	if c.Surveys.YearA == c.Surveys.YearB {
		return fmt.Errorf("survey years must differ, both are %q", c.Surveys.YearA)
	}
	if strings.TrimSpace(c.Surveys.TableA) == "" || strings.TrimSpace(c.Surveys.TableB) == "" {
		return errors.New("surveys.table_a and surveys.table_b are required")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.Window <= 0 {
		return fmt.Errorf("matching.window must be positive, got %v", c.Matching.Window)
	}
	if c.Matching.UnmatchedPenalty <= 0 {
		return fmt.Errorf("matching.unmatched_penalty must be positive, got %v", c.Matching.UnmatchedPenalty)
	}
	if c.Matching.SentinelCost < 1000*c.Matching.UnmatchedPenalty {
		return fmt.Errorf("matching.sentinel_cost %v must dominate the unmatched penalty %v",
			c.Matching.SentinelCost, c.Matching.UnmatchedPenalty)
	}
	if c.Weights.Distance < 0 || c.Weights.Clock < 0 || c.Weights.Depth < 0 || c.Weights.Size < 0 {
		return errors.New("weights must be non-negative")
	}
	if c.Penalties.Side < 0 || c.Penalties.Type < 0 {
		return errors.New("penalties must be non-negative")
	}
	if c.HardLimits.Position <= 0 || c.HardLimits.Clock <= 0 || c.HardLimits.Cost <= 0 {
		return errors.New("hard_limits must be positive")
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.SegmentBinFeet <= 0 {
		return fmt.Errorf("report.segment_bin_feet must be positive, got %v", c.Report.SegmentBinFeet)
	}
	if c.Report.GrowthYears < 0 {
		return fmt.Errorf("report.growth_years must not be negative, got %v", c.Report.GrowthYears)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
