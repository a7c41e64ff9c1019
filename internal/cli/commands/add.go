// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"code.hybscloud.com/lnum"
)

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two lambda numbers",
		Long: `Build two independent lambda numbers by applying the successor step
a and b times from zero, add them, and report a, b and their sum.

The arguments only bound the driver's loops; the addition itself walks the
chains of b and never sees a machine integer.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseSize("a", args[0])
			if err != nil {
				return err
			}
			b, err := parseSize("b", args[1])
			if err != nil {
				return err
			}

			cfg := getConfig(cmd)
			logger := getLogger(cmd)
			num := newNumerals(cfg)
			rep, err := newReporter(cmd, cfg, num)
			if err != nil {
				return err
			}

			ca, err := build(num, a)
			if err != nil {
				return fmt.Errorf("building a: %w", err)
			}
			cb, err := build(num, b)
			if err != nil {
				return fmt.Errorf("building b: %w", err)
			}

			// Report the operands first: Add extends a in place.
			if err := rep.Report("a", ca); err != nil {
				return err
			}
			if err := rep.Report("b", cb); err != nil {
				return err
			}
			sum, err := num.Add(ca, cb)
			if err != nil {
				return errors.Join(fmt.Errorf("adding: %w", err), rep.Flush())
			}
			if err := rep.Report("sum", sum); err != nil {
				return err
			}
			logger.Info("add finished", "nodes", num.Arena().Len())
			return rep.Flush()
		},
	}
}

// build applies the successor step k times from zero.
func build(num *lnum.Numerals, k uint64) (*lnum.Node, error) {
	c := num.Zero()
	for range k {
		var err error
		if c, err = num.Succ(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
