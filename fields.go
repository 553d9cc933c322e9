// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatinsp

import (
	"strconv"

	mu "github.com/avdva/floatinsp/internal/mathutil"
)

// Fields is a decomposed floating-point value.
type Fields struct {
	// Sign is true for negative numbers.
	Sign bool
	// Exp is the biased exponent, as stored.
	Exp uint64
	// Mant is the fraction without the implicit leading digit.
	Mant   uint64
	Layout Layout
}

// Decompose splits raw bits into fields according to l.
// Bits above l.TotalBits are ignored.
func Decompose(raw uint64, l Layout) Fields {
	mantBits := uint(l.MantBits())
	return Fields{
		Sign:   raw>>uint(l.TotalBits-1)&1 == 1,
		Exp:    raw >> mantBits & l.expMask(),
		Mant:   raw & l.mantMask(),
		Layout: l,
	}
}

// Raw composes the fields back.
func (f Fields) Raw() uint64 {
	var sign uint64
	if f.Sign {
		sign = 1 << uint(f.Layout.TotalBits-1)
	}
	return sign | (f.Exp&f.Layout.expMask())<<uint(f.Layout.MantBits()) | f.Mant&f.Layout.mantMask()
}

func (f Fields) SignString() string {
	if f.Sign {
		return "1"
	}
	return "0"
}

func (f Fields) ExpString() string {
	return string(mu.AppendBinary(nil, f.Exp, f.Layout.ExpBits))
}

func (f Fields) MantString() string {
	return string(mu.AppendBinary(nil, f.Mant, f.Layout.MantBits()))
}

// Subnormal returns true, if the exponent field is all zeros.
// Zeros are treated as subnormal numbers.
func (f Fields) Subnormal() bool {
	return f.Exp == 0
}

// Special returns true for infinities and NaNs.
func (f Fields) Special() bool {
	return f.Exp == f.Layout.expMask()
}

// Unbiased returns the stored exponent minus bias.
func (f Fields) Unbiased() int {
	return int(f.Exp) - f.Layout.Bias
}

// DisplayExp returns the exponent of the normalized scientific form.
// For subnormal numbers it's the minimum normal exponent.
func (f Fields) DisplayExp() int {
	if f.Subnormal() {
		return f.Layout.MinExp()
	}
	return f.Unbiased()
}

// Lead returns the implicit leading digit, '0' for subnormals, and '1' otherwise.
func (f Fields) Lead() byte {
	if f.Subnormal() {
		return '0'
	}
	return '1'
}

func (f Fields) signChar() byte {
	if f.Sign {
		return '-'
	}
	return '+'
}

func (f Fields) appendExp(dst []byte) []byte {
	dst = append(dst, " e"...)
	return strconv.AppendInt(dst, int64(f.DisplayExp()), 10)
}
