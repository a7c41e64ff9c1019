// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config provides configuration management for the lnum CLI.
//
// Values are layered with koanf: defaults, then an lnum.yaml file, then
// LNUM_* environment variables, then explicitly set command-line flags.
package config

// Default configuration values.
const (
	DefaultCount       = 100
	DefaultOutput      = "auto" // TTY: table, otherwise text
	DefaultLabelPrefix = "lnum_"
	DefaultLogLevel    = "warn"
	DefaultSlabSize    = 256
	EnvPrefix          = "LNUM_"
)

// Config holds all CLI configuration options.
type Config struct {
	// Count is how many successor steps the count command takes when no
	// argument is given.
	Count       int    `koanf:"count"`
	Output      string `koanf:"output"`
	LabelPrefix string `koanf:"label_prefix"`
	// MaxNodes bounds the node arena; zero is unbounded.
	MaxNodes uint64 `koanf:"max_nodes"`
	SlabSize int    `koanf:"slab_size"`
	LogLevel string `koanf:"log_level"`
	Verbose  bool   `koanf:"verbose"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// Default returns a Config holding the default values.
func Default() *Config {
	return &Config{
		Count:       DefaultCount,
		Output:      DefaultOutput,
		LabelPrefix: DefaultLabelPrefix,
		SlabSize:    DefaultSlabSize,
		LogLevel:    DefaultLogLevel,
	}
}
