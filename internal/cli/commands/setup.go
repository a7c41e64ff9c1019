// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package commands implements the lnum CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"code.hybscloud.com/lnum"
	"code.hybscloud.com/lnum/internal/cli/config"
	"code.hybscloud.com/lnum/internal/report"
)

// getConfig returns the config loaded by the root command, or the defaults
// when the command runs on its own.
func getConfig(cmd *cobra.Command) *config.Config {
	if cfg := config.GetConfig(cmd.Context()); cfg != nil {
		return cfg
	}
	return config.Default()
}

// getLogger returns the logger installed by the root command.
func getLogger(cmd *cobra.Command) *slog.Logger {
	return config.GetLogger(cmd.Context())
}

// newNumerals builds the numerals and arena described by cfg.
func newNumerals(cfg *config.Config) *lnum.Numerals {
	arena := lnum.NewArena(lnum.WithCapacity(cfg.MaxNodes), lnum.WithSlabSize(cfg.SlabSize))
	return lnum.New(lnum.WithArena(arena))
}

// newReporter builds a reporter on the command's stdout.
func newReporter(cmd *cobra.Command, cfg *config.Config, dec report.Decoder) (*report.Reporter, error) {
	mode, err := report.ParseMode(cfg.Output)
	if err != nil {
		return nil, err
	}
	return report.New(cmd.OutOrStdout(), mode, dec), nil
}

// parseSize parses a non-negative loop bound argument.
func parseSize(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", name, s)
	}
	return n, nil
}
