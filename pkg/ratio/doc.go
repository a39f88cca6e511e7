// Package ratio is a small fallible pipeline over colon-separated ratios:
//
//	ParseRatio -> SafeDivide -> DescribeRatioStatus[Fast] -> NormalizeError -> Planner.Plan
//
// Every stage returns a rop.Result. Intermediate stages forward the failing
// stage's error untouched; only the planner normalizes and wraps it, so the
// final failure text reads
//
//	ratio plan failed | normalized ratio error: invalid ratio: bad
//
// while errors.Is / errors.As still reach ErrDivisionByZero or
// *InvalidRatioError underneath.
package ratio
