package ratio

import (
	"github.com/ib-77/ratiorail/pkg/rop"
	"github.com/ib-77/ratiorail/pkg/rop/solo"
)

// NormalizeRatioError prepends the normalized label and one space. It does not
// check for an existing label, so normalize each error once.
func NormalizeRatioError(msg string) string {
	return NormalizedRatioErrorPrefix + " " + msg
}

// NormalizeError is NormalizeRatioError for error values; the cause stays
// reachable through errors.Is and errors.As.
func NormalizeError(err error) error {
	return &NormalizedError{Err: err}
}

// CheckedUnwrap returns the held value or fails with
// "checked unwrap failed :: <label>".
func CheckedUnwrap[T any](value rop.Option[T], label string) rop.Result[T] {
	return solo.FromOption(value, func() error {
		return missing(ErrCheckedUnwrap, label)
	})
}

// OptionToResult returns the held value or fails with
// "optional config missing :: <label>".
func OptionToResult[T any](value rop.Option[T], label string) rop.Result[T] {
	return solo.FromOption(value, func() error {
		return missing(ErrOptionalConfigMissing, label)
	})
}
