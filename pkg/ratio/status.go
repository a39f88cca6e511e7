package ratio

import (
	"context"
	"strconv"

	"github.com/ib-77/ratiorail/pkg/rop"
	"github.com/ib-77/ratiorail/pkg/rop/chain"
	"github.com/ib-77/ratiorail/pkg/rop/solo"
)

const (
	StatusSuccessPrefix  = "ratio success:"
	StatusErrorPrefix    = "ratio error:"
	StatusValueSeparator = " => "
	StatusQuotientPrefix = "quotient "
)

// StatusFunc turns raw ratio input into a status line.
type StatusFunc func(ctx context.Context, input string) rop.Result[string]

var (
	_ StatusFunc = DescribeRatioStatus
	_ StatusFunc = DescribeRatioStatusFast
)

func formatQuotient(quotient int) string {
	return StatusSuccessPrefix + StatusValueSeparator + StatusQuotientPrefix + strconv.Itoa(quotient)
}

// DescribeRatioStatus parses and divides with explicit branching on every step.
// Errors from either step are returned unchanged.
func DescribeRatioStatus(_ context.Context, input string) rop.Result[string] {
	parsed := ParseRatio(input)
	if parsed.IsFailure() {
		return rop.Fail[string](parsed.Err())
	}

	r := parsed.Result()
	quotient := SafeDivide(r.Numerator, r.Denominator)
	if quotient.IsFailure() {
		return rop.Fail[string](quotient.Err())
	}

	return rop.Success(formatQuotient(quotient.Result()))
}

// DescribeRatioStatusFast is DescribeRatioStatus written as a chain: the first
// failing step short-circuits the rest.
func DescribeRatioStatusFast(ctx context.Context, input string) rop.Result[string] {
	quotient := chain.Then(
		chain.Start(ctx, ParseRatio(input)),
		func(_ context.Context, r Ratio) rop.Result[int] { return r.Quotient() },
	)

	return chain.Map(quotient, func(_ context.Context, q int) string {
		return formatQuotient(q)
	}).Result()
}

// StatusLine collapses a status result into a single printable line.
func StatusLine(ctx context.Context, status rop.Result[string]) string {
	return solo.Finally(ctx, status,
		func(_ context.Context, line string) string { return line },
		func(_ context.Context, err error) string { return StatusErrorPrefix + " " + err.Error() },
	)
}
