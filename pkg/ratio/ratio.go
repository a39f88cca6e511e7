package ratio

import (
	"strconv"
	"strings"

	"github.com/ib-77/ratiorail/pkg/rop"
)

// Ratio is a numerator/denominator pair. Only ParseRatio builds one from text.
type Ratio struct {
	Numerator   int
	Denominator int
}

func (r Ratio) String() string {
	return strconv.Itoa(r.Numerator) + ":" + strconv.Itoa(r.Denominator)
}

// Quotient divides the numerator by the denominator.
func (r Ratio) Quotient() rop.Result[int] {
	return SafeDivide(r.Numerator, r.Denominator)
}

// ParseRatio reads "a:b", trimming whitespace around each side. Every malformed
// input fails with the same *InvalidRatioError carrying the untouched input.
func ParseRatio(input string) rop.Result[Ratio] {
	left, right, found := strings.Cut(input, ":")
	if !found {
		return rop.Fail[Ratio](&InvalidRatioError{Input: input})
	}

	numerator, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return rop.Fail[Ratio](&InvalidRatioError{Input: input})
	}
	denominator, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return rop.Fail[Ratio](&InvalidRatioError{Input: input})
	}

	return rop.Success(Ratio{Numerator: numerator, Denominator: denominator})
}

// SafeDivide returns the truncated quotient, or ErrDivisionByZero.
func SafeDivide(dividend, divisor int) rop.Result[int] {
	if divisor == 0 {
		return rop.Fail[int](ErrDivisionByZero)
	}
	return rop.Success(dividend / divisor)
}
