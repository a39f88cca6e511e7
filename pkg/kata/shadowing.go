package kata

import (
	"fmt"
	"math"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ShadowTemperatureReading returns the Celsius reading unchanged and a
// Fahrenheit summary such as "70.7F".
func ShadowTemperatureReading(readingCelsius float64) (float64, string) {
	reading := readingCelsius
	{
		reading := reading*9/5 + 32
		summary := fmt.Sprintf("%.1fF", reading)
		return readingCelsius, summary
	}
}

// RedeclareUnitLabel returns the raw label and an ASCII-only copy of it.
// Compatibility forms are decomposed first, so "℃" keeps its "C".
func RedeclareUnitLabel(rawLabel string) (string, string) {
	label := rawLabel
	{
		label, _, err := transform.String(asciiOnly(), label)
		if err == nil {
			return rawLabel, label
		}
	}
	return rawLabel, label
}

func asciiOnly() transform.Transformer {
	return transform.Chain(
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
}

// ScopedCounterDemo returns the outer count untouched next to an inner copy
// that was incremented inside its own scope. The inner copy saturates at
// math.MaxInt32, so it is only greater than the outer count below that.
func ScopedCounterDemo(start int32) (int32, int32) {
	count := start
	var inner int32
	{
		count := count
		for i := 0; i < 3; i++ {
			if count == math.MaxInt32 {
				break
			}
			count++
		}
		inner = count
	}
	return count, inner
}

// ShadowDemo converts a Celsius reading to Fahrenheit by shadowing the same
// name, using integer arithmetic.
func ShadowDemo(reading int32) int32 {
	value := reading
	{
		value := value*9/5 + 32
		return value
	}
}
