// Package config loads threadkit defaults from YAML or JSON files.
//
// Defaults cover the knobs a deployment tunes without code changes: the
// stack reservation for new threads, the bounded-wait polling interval, and
// an optional lifecycle journal path.
package config

import (
	"fmt"
	"time"
)

// Defaults holds tunable defaults applied to new threads.
type Defaults struct {
	// StackSize is the stack reservation in bytes for threads that do not
	// set one explicitly. Zero means the platform default.
	StackSize int

	// PollInterval is the sleep granularity of bounded waits.
	PollInterval time.Duration

	// JournalPath is the SQLite journal location. Empty disables journaling.
	JournalPath string
}

// Default returns the built-in defaults.
func Default() Defaults {
	return Defaults{
		StackSize:    0,
		PollInterval: time.Millisecond,
		JournalPath:  "",
	}
}

// rawDefaults is the on-disk shape. Durations are strings parsed with
// time.ParseDuration so YAML and JSON share one format.
type rawDefaults struct {
	StackSize    int    `yaml:"stack_size" json:"stack_size"`
	PollInterval string `yaml:"poll_interval" json:"poll_interval"`
	JournalPath  string `yaml:"journal_path" json:"journal_path"`
}

// fromRaw converts the on-disk shape to Defaults, filling gaps from Default.
func fromRaw(raw rawDefaults) (Defaults, error) {
	d := Default()

	if raw.StackSize < 0 {
		return Defaults{}, fmt.Errorf("stack_size must not be negative, got %d", raw.StackSize)
	}
	d.StackSize = raw.StackSize

	if raw.PollInterval != "" {
		interval, err := time.ParseDuration(raw.PollInterval)
		if err != nil {
			return Defaults{}, fmt.Errorf("parse poll_interval: %w", err)
		}
		if interval <= 0 {
			return Defaults{}, fmt.Errorf("poll_interval must be positive, got %s", interval)
		}
		d.PollInterval = interval
	}

	d.JournalPath = raw.JournalPath
	return d, nil
}
