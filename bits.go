// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatinsp

import (
	"math"
	"unsafe"

	"github.com/x448/float16"
)

// Float is a set of Go floating-point types, that can be inspected directly.
type Float interface {
	~float32 | ~float64
}

// Each float type must have the same size as its bits type.
// A mismatch makes the index out of range, or overflows uintptr, and the package won't build.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(float16.Float16(0))-unsafe.Sizeof(uint16(0))]
	_ = [1]struct{}{}[unsafe.Sizeof(uint16(0))-unsafe.Sizeof(float16.Float16(0))]
	_ = [1]struct{}{}[unsafe.Sizeof(float32(0))-unsafe.Sizeof(uint32(0))]
	_ = [1]struct{}{}[unsafe.Sizeof(uint32(0))-unsafe.Sizeof(float32(0))]
	_ = [1]struct{}{}[unsafe.Sizeof(float64(0))-unsafe.Sizeof(uint64(0))]
	_ = [1]struct{}{}[unsafe.Sizeof(uint64(0))-unsafe.Sizeof(float64(0))]
)

// BitsHalf returns the binary16 representation of v.
func BitsHalf(v float16.Float16) uint16 {
	return v.Bits()
}

// Bits32 returns the binary32 representation of v.
func Bits32(v float32) uint32 {
	return math.Float32bits(v)
}

// Bits64 returns the binary64 representation of v.
func Bits64(v float64) uint64 {
	return math.Float64bits(v)
}

// Bits returns the in-memory representation of v, widened to a uint64.
// No numeric conversion happens, a float32 is never converted to a float64.
func Bits[T Float](v T) uint64 {
	if unsafe.Sizeof(v) == unsafe.Sizeof(float32(0)) {
		return uint64(Bits32(float32(v)))
	}
	return Bits64(float64(v))
}

// LayoutOf returns the layout of T.
func LayoutOf[T Float]() Layout {
	var v T
	if unsafe.Sizeof(v) == unsafe.Sizeof(float32(0)) {
		return Single
	}
	return Double
}
