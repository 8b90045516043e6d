// Package config loads and validates pigmatch configuration from TOML.
//
// Defaults come from Default(); a config file only overrides the keys it
// names, merging per named section. Unknown keys are rejected at load so a
// typo fails at the boundary instead of silently running with defaults.
package config
