package ratio

import (
	"errors"
	"fmt"
)

const (
	DivisionByZeroMessage       = "division by zero"
	InvalidRatioPrefix          = "invalid ratio:"
	NormalizedRatioErrorPrefix  = "normalized ratio error:"
	CheckedUnwrapPrefix         = "checked unwrap failed"
	OptionalConfigMissingPrefix = "optional config missing"
	ContextSeparator            = " :: "
)

var (
	ErrDivisionByZero        = errors.New(DivisionByZeroMessage)
	ErrCheckedUnwrap         = errors.New(CheckedUnwrapPrefix)
	ErrOptionalConfigMissing = errors.New(OptionalConfigMissingPrefix)
)

// InvalidRatioError reports input that is not two colon-separated integers.
// Input is kept exactly as the caller passed it.
type InvalidRatioError struct {
	Input string
}

func (e *InvalidRatioError) Error() string {
	return InvalidRatioPrefix + " " + e.Input
}

// NormalizedError prefixes any pipeline error with the normalized label.
// Wrapping an already normalized error prefixes it again.
type NormalizedError struct {
	Err error
}

func (e *NormalizedError) Error() string {
	return NormalizeRatioError(e.Err.Error())
}

func (e *NormalizedError) Unwrap() error {
	return e.Err
}

// PlanError is the failure returned by the planner.
type PlanError struct {
	Err error
}

func (e *PlanError) Error() string {
	return PlanFailedPrefix + PipelineSeparator + e.Err.Error()
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

func missing(reason error, label string) error {
	return fmt.Errorf("%w%s%s", reason, ContextSeparator, label)
}
