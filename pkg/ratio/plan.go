package ratio

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ib-77/ratiorail/pkg/rop"
	"github.com/ib-77/ratiorail/pkg/rop/chain"
	"github.com/ib-77/ratiorail/pkg/rop/solo"
)

const (
	PlanReadyPrefix   = "ratio plan ready"
	PlanFailedPrefix  = "ratio plan failed"
	PipelineSeparator = " | "
	ThresholdLabel    = "threshold source"

	// DefaultThresholdSource is reported when the caller gives no hint.
	DefaultThresholdSource = "default"
)

// Planner wraps a status stage into a plan line with a threshold source.
type Planner struct {
	fallback string
	status   StatusFunc
	logger   *zap.Logger
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithFallbackThreshold sets the threshold source used when no hint is given.
func WithFallbackThreshold(source string) PlannerOption {
	return func(p *Planner) {
		p.fallback = source
	}
}

// WithStatusFunc swaps the status stage, e.g. for DescribeRatioStatus.
func WithStatusFunc(status StatusFunc) PlannerOption {
	return func(p *Planner) {
		if status != nil {
			p.status = status
		}
	}
}

// WithLogger logs plan outcomes at debug level; nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) PlannerOption {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPlanner returns a planner using DescribeRatioStatusFast and DefaultThresholdSource.
func NewPlanner(opts ...PlannerOption) *Planner {
	p := &Planner{
		fallback: DefaultThresholdSource,
		status:   DescribeRatioStatusFast,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultPlanner = NewPlanner()

// PlanRatios runs the default planner.
func PlanRatios(ctx context.Context, input string, thresholdHint rop.Option[string]) rop.Result[string] {
	return defaultPlanner.Plan(ctx, input, thresholdHint)
}

// Plan describes input and wraps the status line with the threshold source.
// On failure the status error is normalized once and wrapped in a *PlanError.
func (p *Planner) Plan(ctx context.Context, input string, thresholdHint rop.Option[string]) rop.Result[string] {
	threshold := p.threshold(ctx, thresholdHint)

	plan := chain.Map(chain.Start(ctx, p.status(ctx, input)),
		func(_ context.Context, status string) string {
			return strings.Join([]string{
				PlanReadyPrefix,
				status,
				ThresholdLabel + ": " + threshold,
			}, PipelineSeparator)
		}).
		MapErr(func(_ context.Context, err error) error {
			return &PlanError{Err: NormalizeError(err)}
		}).
		Result()

	return solo.DoubleTee(ctx, plan,
		func(_ context.Context, line string) {
			p.logger.Debug("ratio plan ready",
				zap.String("input", input),
				zap.String("threshold", threshold),
				zap.Stringer("result_id", plan.Id()))
		},
		func(_ context.Context, err error) {
			p.logger.Debug("ratio plan failed",
				zap.String("input", input),
				zap.Bool("division_by_zero", errors.Is(err, ErrDivisionByZero)),
				zap.Error(err))
		})
}

func (p *Planner) threshold(ctx context.Context, hint rop.Option[string]) string {
	return solo.Finally(ctx, OptionToResult(hint, ThresholdLabel),
		func(_ context.Context, source string) string { return source },
		func(_ context.Context, err error) string {
			p.logger.Debug("using fallback threshold source",
				zap.String("fallback", p.fallback),
				zap.NamedError("reason", err))
			return p.fallback
		})
}
