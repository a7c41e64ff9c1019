// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"code.hybscloud.com/lnum"
	"code.hybscloud.com/lnum/internal/report"
)

// NewCountCommand creates the count command.
func NewCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count [n]",
		Short: "Build successive lambda numbers from zero",
		Long: `Start from zero and apply the successor step n times, decoding and
reporting the number after every step.

n defaults to the configured count (100). The labels are the configured
label prefix followed by the step number.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd)
			n := uint64(cfg.Count)
			if len(args) == 1 {
				var err error
				if n, err = parseSize("count", args[0]); err != nil {
					return err
				}
			}

			logger := getLogger(cmd)
			num := newNumerals(cfg)
			rep, err := newReporter(cmd, cfg, num)
			if err != nil {
				return err
			}

			runErr := count(logger, num, rep, cfg.LabelPrefix, n)
			if err := rep.Flush(); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			logger.Info("count finished", "steps", n, "nodes", num.Arena().Len())
			return nil
		},
	}
}

// count drives n successor steps from zero, reporting after each.
func count(logger *slog.Logger, num *lnum.Numerals, rep *report.Reporter, prefix string, n uint64) error {
	if n == 0 {
		return nil
	}
	var i uint64
	for c, err := range num.Iterate(num.Zero()) {
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		i++
		label := fmt.Sprintf("%s%d", prefix, i)
		if err := rep.Report(label, c); err != nil {
			return err
		}
		logger.Debug("step", "label", label, "nodes", num.Arena().Len())
		if i == n {
			break
		}
	}
	return nil
}
