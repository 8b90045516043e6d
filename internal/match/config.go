package match

import (
	"errors"
	"fmt"
)

// Weights scale each attribute's contribution to a candidate edge cost.
type Weights struct {
	Distance float64
	Clock    float64
	Depth    float64
	Size     float64
}

// Penalties are flat cost additions for attribute disagreements.
type Penalties struct {
	Side float64
	Type float64
}

// HardLimits are post-assignment feasibility thresholds. A solver-chosen pair
// exceeding any of them is demoted to unmatched.
type HardLimits struct {
	Position float64 // feet
	Clock    float64 // hours
	Cost     float64
}

// Config holds every parameter of one matching run.
type Config struct {
	// Window is the spatial candidate radius in feet.
	Window float64
	// RequireSameSide drops candidate pairs whose ID/OD indicators are
	// both present and differ.
	RequireSameSide bool

	Weights   Weights
	Penalties Penalties

	// UnmatchedPenalty is the cost of assigning an anomaly to a dummy
	// row or column, i.e. leaving it unmatched.
	UnmatchedPenalty float64
	// SentinelCost fills matrix cells with no direct candidate edge. It
	// must dominate every real edge cost and the unmatched penalty
	// without overflowing the solver's potential updates.
	SentinelCost float64

	HardLimits HardLimits
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() Config {
	return Config{
		Window:          5.0,
		RequireSameSide: false,
		Weights: Weights{
			Distance: 1.0,
			Clock:    0.3,
			Depth:    0.05,
			Size:     0.02,
		},
		Penalties: Penalties{
			Side: 5.0,
			Type: 2.0,
		},
		UnmatchedPenalty: 20.0,
		SentinelCost:     1e9,
		HardLimits: HardLimits{
			Position: 5.0,
			Clock:    3.0,
			Cost:     12.0,
		},
	}
}

// Validate rejects parameter sets the solver cannot run safely.
func (c Config) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("window must be positive, got %v", c.Window)
	}
	if c.Weights.Distance < 0 || c.Weights.Clock < 0 || c.Weights.Depth < 0 || c.Weights.Size < 0 {
		return errors.New("weights must be non-negative")
	}
	if c.Penalties.Side < 0 || c.Penalties.Type < 0 {
		return errors.New("penalties must be non-negative")
	}
	if c.UnmatchedPenalty <= 0 {
		return fmt.Errorf("unmatched penalty must be positive, got %v", c.UnmatchedPenalty)
	}
	// The sentinel has to dwarf both the unmatched penalty and any
	// plausible edge cost, or the solver may prefer a cell that has no
	// candidate edge behind it.
	if c.SentinelCost < 1000*c.UnmatchedPenalty {
		return fmt.Errorf("sentinel cost %v too small relative to unmatched penalty %v", c.SentinelCost, c.UnmatchedPenalty)
	}
	if c.SentinelCost > 1e15 {
		return fmt.Errorf("sentinel cost %v risks loss of precision in potential updates", c.SentinelCost)
	}
	if c.HardLimits.Position <= 0 || c.HardLimits.Clock <= 0 || c.HardLimits.Cost <= 0 {
		return errors.New("hard limits must be positive")
	}
	return nil
}
