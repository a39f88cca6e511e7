package kata

import (
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/ib-77/ratiorail/pkg/rop"
)

const PlanckRatio float64 = 6.626_070_15e-34

// Packet is a (glyph, flag, value) triple.
type Packet struct {
	Glyph rune
	Flag  bool
	Value float64
}

func ConstPlanckRatio() float64 {
	return PlanckRatio
}

// SplitTupleComponents takes the packet apart and puts it back in the same order.
func SplitTupleComponents(packet Packet) Packet {
	glyph, flag, value := packet.Glyph, packet.Flag, packet.Value
	return Packet{Glyph: glyph, Flag: flag, Value: value}
}

func TupleSwap(n int32, flag bool) (bool, int32) {
	return flag, n
}

func BoolGate(lhs, rhs bool) bool {
	return lhs && rhs
}

// SumMixedIntegers adds a signed delta to an unsigned baseline, saturating at
// 0 and math.MaxUint64 instead of wrapping.
func SumMixedIntegers(deltaSigned int32, baselineUnsigned uint64) uint64 {
	if deltaSigned < 0 {
		magnitude := uint64(-int64(deltaSigned))
		if magnitude > baselineUnsigned {
			return 0
		}
		return baselineUnsigned - magnitude
	}

	delta := uint64(deltaSigned)
	if baselineUnsigned > math.MaxUint64-delta {
		return math.MaxUint64
	}
	return baselineUnsigned + delta
}

// MaxU64Sensor returns the largest candidate clamped into the uint64 range.
// Nil and negative candidates count as zero; an empty slice gives 0.
func MaxU64Sensor(candidates []*big.Int) uint64 {
	largest := new(big.Int)
	for _, c := range candidates {
		if c != nil && c.Cmp(largest) > 0 {
			largest = c
		}
	}
	if !largest.IsUint64() {
		return math.MaxUint64
	}
	return largest.Uint64()
}

func AvgF64Readings(values []float64) rop.Option[float64] {
	if len(values) == 0 {
		return rop.None[float64]()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return rop.Some(sum / float64(len(values)))
}

// CharFromCode returns None for surrogates and values above the Unicode range.
func CharFromCode(code uint32) rop.Option[rune] {
	if code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
		return rop.None[rune]()
	}
	return rop.Some(rune(code))
}
