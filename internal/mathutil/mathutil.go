package mathutil

import (
	"math"
	"unsafe"

	"github.com/shopspring/decimal"
)

const bitsInWord = int(8 * unsafe.Sizeof(uint64(0)))

var (
	half = decimal.New(5, -1)
)

// Mask returns a value with the lowest 'width' bits set.
func Mask(width int) uint64 {
	if width <= 0 {
		return 0
	}
	if width >= bitsInWord {
		return math.MaxUint64
	}
	return 1<<uint(width) - 1
}

// AppendBinary appends the lowest 'width' bits of v to dst, most significant bit first.
// Missing high bits are rendered as zeros.
func AppendBinary(dst []byte, v uint64, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		if i < bitsInWord && v>>uint(i)&1 == 1 {
			dst = append(dst, '1')
		} else {
			dst = append(dst, '0')
		}
	}
	return dst
}

// FracFloat64 treats the lowest 'width' bits of mant as a binary fraction 0.b1b2...bn
// and returns its value. Weights start at 2^-1 for the most significant bit.
// The sum is accumulated in float64, so it is exact for width <= 53.
func FracFloat64(mant uint64, width int) float64 {
	var result float64
	for i := 0; i < width; i++ {
		if mant>>uint(width-1-i)&1 == 1 {
			result += math.Ldexp(1, -1-i)
		}
	}
	return result
}

// FracDecimal is like FracFloat64, but the fraction is accumulated exactly.
func FracDecimal(mant uint64, width int) decimal.Decimal {
	result, weight := decimal.Zero, half
	for i := 0; i < width; i++ {
		if mant>>uint(width-1-i)&1 == 1 {
			result = result.Add(weight)
		}
		weight = weight.Mul(half)
	}
	return result
}
