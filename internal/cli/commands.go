package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/ratiorail/pkg/ratio"
	"github.com/ib-77/ratiorail/pkg/rop"
	"github.com/ib-77/ratiorail/pkg/rop/chain"
)

func NewParseCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <ratio>",
		Short: "Parse a ratio such as \"6:3\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := ratio.ParseRatio(args[0])
			if res.IsFailure() {
				return pipelineFailure(res.Err())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Result().String())
			return err
		},
	}
}

func NewDivideCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "divide <dividend> <divisor>",
		Short: "Divide two integers, rejecting a zero divisor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands := chain.ThenTry(chain.FromValue(cmd.Context(), args),
				func(_ context.Context, args []string) ([2]int, error) {
					dividend, err := strconv.Atoi(args[0])
					if err != nil {
						return [2]int{}, fmt.Errorf("dividend: %w", err)
					}
					divisor, err := strconv.Atoi(args[1])
					if err != nil {
						return [2]int{}, fmt.Errorf("divisor: %w", err)
					}
					return [2]int{dividend, divisor}, nil
				}).Result()
			if operands.IsFailure() {
				return WrapExitError(ExitCommandError, "invalid operand", operands.Err())
			}

			quotient := ratio.SafeDivide(operands.Result()[0], operands.Result()[1])
			if quotient.IsFailure() {
				return pipelineFailure(quotient.Err())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), quotient.Result())
			return err
		},
	}
}

func NewStatusCommand(opts *RootOptions) *cobra.Command {
	var manual bool

	cmd := &cobra.Command{
		Use:   "status <ratio>",
		Short: "Describe the quotient of a ratio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			describe := ratio.StatusFunc(ratio.DescribeRatioStatusFast)
			if manual {
				describe = ratio.DescribeRatioStatus
			}

			status := describe(cmd.Context(), args[0])
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), ratio.StatusLine(cmd.Context(), status)); err != nil {
				return err
			}
			if status.IsFailure() {
				opts.Logger.Debug("status failed", zap.String("input", args[0]), zap.Error(status.Err()))
				return &ExitError{Code: ExitFailure}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&manual, "manual", false, "use the explicitly branching implementation")
	return cmd
}

func NewNormalizeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <message>...",
		Short: "Prefix an error message with the normalized label",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), ratio.NormalizeRatioError(strings.Join(args, " ")))
			return err
		},
	}
}

func NewPlanCommand(opts *RootOptions) *cobra.Command {
	var hint string

	cmd := &cobra.Command{
		Use:   "plan <ratio>",
		Short: "Plan a ratio with an optional threshold hint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			thresholdHint := rop.None[string]()
			if cmd.Flags().Changed("hint") {
				thresholdHint = rop.Some(hint)
			}

			planner := ratio.NewPlanner(
				ratio.WithFallbackThreshold(opts.Config.Planner.FallbackThreshold),
				ratio.WithLogger(opts.Logger),
			)

			plan := planner.Plan(cmd.Context(), args[0], thresholdHint)
			if plan.IsFailure() {
				return pipelineFailure(plan.Err())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), plan.Result())
			return err
		},
	}

	cmd.Flags().StringVar(&hint, "hint", "", "threshold source hint")
	return cmd
}
