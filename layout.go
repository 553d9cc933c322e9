// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatinsp decomposes IEEE-754 floating-point values into
// sign, exponent and mantissa fields, and renders them either
// as a bit-grouped memory layout, or in a normalized scientific form:
//   1.7 -> 0 01111111111 1011001100110011001100110011001100110011001100110011
//       -> +1.7000000000000000 e0
// It is meant for inspecting the encoding, not for numeric computations.
package floatinsp

import (
	"fmt"
	"strings"

	mu "github.com/avdva/floatinsp/internal/mathutil"
)

// Layout describes an IEEE-754 binary interchange format.
//   TotalBits-1  TotalBits-2          MantBits-1        0
//   ____________|____________________|_________________
//   s            eeeeeeeeeeeeeeeeeeee mmmmmmmmmmmmmmmmm
type Layout struct {
	// TotalBits is the width of the whole value, 64 at most.
	TotalBits int
	// ExpBits is the width of the biased exponent field.
	ExpBits int
	// Bias is subtracted from the stored exponent to get the actual one.
	Bias int
}

var (
	// Half is the binary16 format.
	Half = Layout{TotalBits: 16, ExpBits: 5, Bias: 15}
	// Single is the binary32 format, float32.
	Single = Layout{TotalBits: 32, ExpBits: 8, Bias: 127}
	// Double is the binary64 format, float64.
	Double = Layout{TotalBits: 64, ExpBits: 11, Bias: 1023}
)

// LayoutByName returns one of predefined layouts.
// Accepted names are 'half', 'single', 'double', their bit widths,
// and the corresponding Go type names.
func LayoutByName(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "half", "16", "float16", "binary16":
		return Half, nil
	case "single", "32", "float32", "binary32":
		return Single, nil
	case "double", "64", "float64", "binary64":
		return Double, nil
	}
	return Layout{}, fmt.Errorf("unknown layout %q", name)
}

// MantBits returns the width of the mantissa (fraction) field.
func (l Layout) MantBits() int {
	return l.TotalBits - l.ExpBits - 1
}

// MinExp returns the minimum exponent of a normal number.
// Subnormal numbers are displayed with this exponent too.
func (l Layout) MinExp() int {
	return 1 - l.Bias
}

// Valid checks, that the layout has a sign bit, non-empty exponent and mantissa fields,
// fits in 64 bits, and uses the standard bias 2^(ExpBits-1)-1.
func (l Layout) Valid() bool {
	return l.TotalBits <= 64 && l.ExpBits > 1 && l.MantBits() > 0 &&
		uint64(l.Bias) == mu.Mask(l.ExpBits-1)
}

func (l Layout) expMask() uint64 {
	return mu.Mask(l.ExpBits)
}

func (l Layout) mantMask() uint64 {
	return mu.Mask(l.MantBits())
}

// String returns the name of a predefined layout, or its parameters.
func (l Layout) String() string {
	switch l {
	case Half:
		return "binary16"
	case Single:
		return "binary32"
	case Double:
		return "binary64"
	}
	return fmt.Sprintf("layout(%d, %d, %d)", l.TotalBits, l.ExpBits, l.Bias)
}
