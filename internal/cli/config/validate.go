// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// validOutputs lists the accepted output formats.
var validOutputs = []string{"auto", "text", "table", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	if c.SlabSize <= 0 {
		return fmt.Errorf("slab_size must be positive, got %d", c.SlabSize)
	}
	if !slices.Contains(validOutputs, c.Output) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.Output, strings.Join(validOutputs, ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level selected by LogLevel, or debug when Verbose
// is set.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
