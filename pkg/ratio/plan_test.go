package ratio

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/ratiorail/pkg/rop"
)

func expectedPlanSuccess(status, threshold string) string {
	return PlanReadyPrefix + PipelineSeparator + status + PipelineSeparator + ThresholdLabel + ": " + threshold
}

func TestPlanRatios_ThreadsSuccessPipeline(t *testing.T) {
	t.Parallel()
	res := PlanRatios(context.Background(), "6:3", rop.Some("threshold"))
	require.True(t, res.IsSuccess(), "unexpected error: %v", res.Err())
	assert.Equal(t, "ratio plan ready | ratio success: => quotient 2 | threshold source: threshold", res.Result())
	assert.Equal(t, expectedPlanSuccess(expectedRatioSuccess("2"), "threshold"), res.Result())
}

func TestPlanRatios_FallbackThreshold(t *testing.T) {
	t.Parallel()
	res := PlanRatios(context.Background(), "6:3", rop.None[string]())
	require.True(t, res.IsSuccess(), "unexpected error: %v", res.Err())
	assert.Equal(t, "ratio plan ready | ratio success: => quotient 2 | threshold source: default", res.Result())
}

func TestPlanRatios_ReturnsNormalizedError(t *testing.T) {
	t.Parallel()
	res := PlanRatios(context.Background(), "bad", rop.None[string]())
	require.True(t, res.IsFailure())

	msg := res.Err().Error()
	prefix, normalized, found := strings.Cut(msg, PipelineSeparator)
	require.True(t, found, "missing separator in %q", msg)
	assert.Equal(t, PlanFailedPrefix, prefix)
	assert.True(t, strings.HasPrefix(normalized, NormalizedRatioErrorPrefix), "got %q", msg)
	assert.Contains(t, normalized, "bad")
	assert.Equal(t, "ratio plan failed | normalized ratio error: invalid ratio: bad", msg)
	assert.NotContains(t, msg, ThresholdLabel)
}

func TestPlanRatios_ErrorChain(t *testing.T) {
	t.Parallel()
	res := PlanRatios(context.Background(), "4:0", rop.Some("ignored"))
	require.True(t, res.IsFailure())
	assert.Equal(t, "ratio plan failed | normalized ratio error: division by zero", res.Err().Error())

	var planErr *PlanError
	require.True(t, errors.As(res.Err(), &planErr))
	var normalized *NormalizedError
	require.True(t, errors.As(res.Err(), &normalized))
	assert.ErrorIs(t, res.Err(), ErrDivisionByZero)

	// normalized exactly once
	assert.Equal(t, 1, strings.Count(res.Err().Error(), NormalizedRatioErrorPrefix))
}

func TestPlanner_Options(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := NewPlanner(WithFallbackThreshold("config"), WithStatusFunc(DescribeRatioStatus))
	res := p.Plan(ctx, "10:5", rop.None[string]())
	require.True(t, res.IsSuccess())
	assert.Equal(t, "ratio plan ready | ratio success: => quotient 2 | threshold source: config", res.Result())

	// nil options keep the defaults
	p = NewPlanner(WithStatusFunc(nil), WithLogger(nil))
	res = p.Plan(ctx, "10:5", rop.Some("hint"))
	require.True(t, res.IsSuccess())
	assert.Equal(t, "ratio plan ready | ratio success: => quotient 2 | threshold source: hint", res.Result())
}

func TestPlanner_CustomStatusFailure(t *testing.T) {
	t.Parallel()
	failing := func(ctx context.Context, input string) rop.Result[string] {
		return rop.Fail[string](errors.New("status offline"))
	}
	res := NewPlanner(WithStatusFunc(failing)).Plan(context.Background(), "6:3", rop.None[string]())
	require.True(t, res.IsFailure())
	assert.Equal(t, "ratio plan failed | normalized ratio error: status offline", res.Err().Error())
}

func TestPlanner_Logs(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	p := NewPlanner(WithLogger(zap.New(core)))
	ctx := context.Background()

	p.Plan(ctx, "6:3", rop.Some("threshold"))
	p.Plan(ctx, "6:0", rop.None[string]())

	ready := logs.FilterMessage("ratio plan ready").All()
	require.Len(t, ready, 1)
	assert.Equal(t, "6:3", ready[0].ContextMap()["input"])
	assert.Equal(t, "threshold", ready[0].ContextMap()["threshold"])

	failed := logs.FilterMessage("ratio plan failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, true, failed[0].ContextMap()["division_by_zero"])

	assert.Equal(t, 1, logs.FilterMessage("using fallback threshold source").Len())
}
