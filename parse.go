// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatinsp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrBadLength is returned, if the number of bits differs from the layout's width.
	ErrBadLength = errors.New("bad number of bits")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// Parse parses a memory layout string, as returned by MemLayout.
// Bits can be grouped with spaces or underscores, and an optional '0b' prefix is allowed.
func Parse(s string, l Layout) (Format, error) {
	if !l.Valid() {
		return Format{}, fmt.Errorf("invalid layout %v", l)
	}
	s, offset := prepareString(s)
	if len(s) == 0 {
		return Format{}, fmt.Errorf("empty input")
	}
	raw, err := parseBits(s, l.TotalBits)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return Format{}, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return FromBits(raw, l), nil
}

// MustParse is like Parse, but panics on errors.
func MustParse(s string, l Layout) Format {
	f, err := Parse(s, l)
	if err != nil {
		panic(err)
	}
	return f
}

// LooksLikeBits returns true, if s can be a memory layout of l:
// it has a '0b' prefix, or it consists of exactly l.TotalBits binary digits and separators.
func LooksLikeBits(s string, l Layout) bool {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(trimmed, "0b") {
		return true
	}
	count := 0
	for _, r := range trimmed {
		switch r {
		case '0', '1':
			count++
		case ' ', '_':
		default:
			return false
		}
	}
	return count == l.TotalBits
}

// prepareString removes leading and trailing spaces, and the '0b' prefix.
// returns the resulting string and the number of bytes cut from the beginning.
func prepareString(s string) (prepared string, offset int) {
	prepared = strings.TrimLeftFunc(s, unicode.IsSpace)
	offset = len(s) - len(prepared)
	prepared = strings.TrimRightFunc(prepared, unicode.IsSpace)
	if len(prepared) >= 2 && prepared[0] == '0' && (prepared[1] == 'b' || prepared[1] == 'B') {
		prepared = prepared[2:]
		offset += 2
	}
	return prepared, offset
}

func parseBits(s string, width int) (raw uint64, err error) {
	count := 0
	for i, r := range s {
		switch r {
		case '0', '1':
			if count == width {
				return 0, fmt.Errorf("%w: more than %d", ErrBadLength, width)
			}
			raw = raw<<1 | uint64(r-'0')
			count++
		case ' ', '_':
		default:
			return 0, newPosError(fmt.Sprintf("unexpected char %q", r), i)
		}
	}
	if count != width {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrBadLength, count, width)
	}
	return raw, nil
}
