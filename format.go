// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatinsp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/x448/float16"

	mu "github.com/avdva/floatinsp/internal/mathutil"
)

const (
	// fracDigits is the number of decimal digits in the fraction of the scientific form.
	fracDigits = 16
	groupSep   = ' '
)

// Format is a floating-point value of a given layout.
// The value itself is stored as raw bits and is never converted.
type Format struct {
	raw    uint64
	layout Layout
}

// Of returns a Format for a float32 or a float64 value.
func Of[T Float](v T) Format {
	return Format{raw: Bits(v), layout: LayoutOf[T]()}
}

// OfHalf returns a Format for a binary16 value.
func OfHalf(v float16.Float16) Format {
	return Format{raw: uint64(BitsHalf(v)), layout: Half}
}

// FromBits returns a Format for raw bits of layout l.
// Bits above l.TotalBits are dropped.
func FromBits(raw uint64, l Layout) Format {
	return Format{raw: raw & mu.Mask(l.TotalBits), layout: l}
}

// Raw returns the bits of the value.
func (f Format) Raw() uint64 {
	return f.raw
}

func (f Format) Layout() Layout {
	return f.layout
}

// Fields returns the value decomposed into sign, exponent, and mantissa.
func (f Format) Fields() Fields {
	return Decompose(f.raw, f.layout)
}

// MemLayout returns the bits of the value, most significant first.
// If sep is true, sign, exponent, and mantissa are separated with a space.
func (f Format) MemLayout(sep bool) string {
	fields := f.Fields()
	l := f.layout.TotalBits
	if sep {
		l += 2
	}
	buf := make([]byte, 0, l)
	buf = append(buf, fields.SignString()...)
	if sep {
		buf = append(buf, groupSep)
	}
	buf = mu.AppendBinary(buf, fields.Exp, f.layout.ExpBits)
	if sep {
		buf = append(buf, groupSep)
	}
	buf = mu.AppendBinary(buf, fields.Mant, f.layout.MantBits())
	return string(buf)
}

// Mem returns the memory layout with fields separated by spaces.
func (f Format) Mem() string {
	return f.MemLayout(true)
}

// Scientific returns the value in a normalized form, like '+1.5000000000000000 e-3',
// where the fraction has 16 digits and the exponent is a power of 2.
// Subnormal numbers, including zeros, have a leading '0' and the minimum normal exponent.
// Infinities and NaNs are decomposed as is, the result is meaningless for them.
func (f Format) Scientific() string {
	fields := f.Fields()
	frac := mu.FracFloat64(fields.Mant, f.layout.MantBits())
	// 0.xxxxxxxxxxxxxxxx
	fracStr := strconv.FormatFloat(frac, 'f', fracDigits, 64)
	return f.scientific(fields, fracStr[2:])
}

// ScientificExact is like Scientific, but the fraction is printed with all its digits.
// Trailing zeros are omitted, a zero fraction is printed as '0'.
func (f Format) ScientificExact() string {
	fields := f.Fields()
	fracStr := mu.FracDecimal(fields.Mant, f.layout.MantBits()).String()
	if dot := strings.IndexByte(fracStr, '.'); dot >= 0 {
		fracStr = fracStr[dot+1:]
	}
	return f.scientific(fields, fracStr)
}

func (f Format) scientific(fields Fields, fracStr string) string {
	buf := make([]byte, 0, len(fracStr)+16)
	buf = append(buf, fields.signChar(), fields.Lead(), '.')
	buf = append(buf, fracStr...)
	return string(fields.appendExp(buf))
}

// Float64 returns the value as a float64.
// The conversion is exact for all predefined layouts.
func (f Format) Float64() float64 {
	fields := f.Fields()
	mantBits := f.layout.MantBits()
	var result float64
	switch {
	case fields.Special():
		if fields.Mant != 0 {
			return math.NaN()
		}
		result = math.Inf(1)
	case fields.Subnormal():
		result = math.Ldexp(float64(fields.Mant), f.layout.MinExp()-mantBits)
	default:
		result = math.Ldexp(float64(fields.Mant|1<<uint(mantBits)), fields.Unbiased()-mantBits)
	}
	if fields.Sign {
		result = -result
	}
	return result
}

// String returns the memory layout and the scientific form separated by a tab.
func (f Format) String() string {
	return f.Mem() + "\t" + f.Scientific()
}

// GoString returns debug string representation.
func (f Format) GoString() string {
	fields := f.Fields()
	return fmt.Sprintf("[%s s=%s e=%d m=%#x]", f.layout, fields.SignString(), fields.Unbiased(), fields.Mant)
}
