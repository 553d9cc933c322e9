package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/x448/float16"

	"github.com/avdva/floatinsp"
)

var demoLiterals = []float64{1.0, 1.5, 1.7}

// printer writes '<value> TAB <memory layout> TAB <scientific>' lines.
type printer struct {
	w     io.Writer
	exact bool
}

func (p *printer) line(value string, f floatinsp.Format) error {
	cols := []string{value, f.Mem(), f.Scientific()}
	if p.exact {
		cols = append(cols, f.ScientificExact())
	}
	_, err := io.WriteString(p.w, strings.Join(cols, "\t")+"\n")
	return err
}

// shortValue renders v like an output stream with default settings does.
func shortValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// fixedValue renders v with 40 digits after the point.
func fixedValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 40, 64)
}

// formatOf converts v to the given layout, rounding it if needed.
func formatOf(v float64, l floatinsp.Layout) (floatinsp.Format, error) {
	switch l {
	case floatinsp.Double:
		return floatinsp.Of(v), nil
	case floatinsp.Single:
		return floatinsp.Of(float32(v)), nil
	case floatinsp.Half:
		return floatinsp.OfHalf(float16.Fromfloat32(float32(v))), nil
	}
	return floatinsp.Format{}, fmt.Errorf("unsupported layout %v", l)
}

// halvings calls fn for 1, 1/2, 1/4, ... computed in the precision of l,
// until the value underflows to zero. Zero itself is not passed to fn.
func halvings(l floatinsp.Layout, fn func(floatinsp.Format) error) error {
	switch l {
	case floatinsp.Double:
		for d := 1.0; d != 0; d /= 2 {
			if err := fn(floatinsp.Of(d)); err != nil {
				return err
			}
		}
	case floatinsp.Single:
		for d := float32(1); d != 0; d /= 2 {
			if err := fn(floatinsp.Of(d)); err != nil {
				return err
			}
		}
	case floatinsp.Half:
		for h := float16.Fromfloat32(1); h.Float32() != 0; h = float16.Fromfloat32(h.Float32() / 2) {
			if err := fn(floatinsp.OfHalf(h)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported layout %v", l)
	}
	return nil
}

// demo prints the literals and then the halving sequence.
func (p *printer) demo(l floatinsp.Layout) error {
	for _, v := range demoLiterals {
		f, err := formatOf(v, l)
		if err != nil {
			return err
		}
		if err := p.line(shortValue(f.Float64()), f); err != nil {
			return err
		}
	}
	var steps int
	err := halvings(l, func(f floatinsp.Format) error {
		steps++
		return p.line(fixedValue(f.Float64()), f)
	})
	log.Debug().Stringer("layout", l).Int("steps", steps).Msg("halving finished")
	return err
}

// inspect prints a line for each argument. Arguments are either
// memory layouts, like '0 01111 0000000000', or decimal numbers.
func (p *printer) inspect(args []string, l floatinsp.Layout) error {
	for _, arg := range args {
		var (
			f   floatinsp.Format
			err error
		)
		if floatinsp.LooksLikeBits(arg, l) {
			f, err = floatinsp.Parse(arg, l)
		} else {
			var v float64
			if v, err = strconv.ParseFloat(strings.TrimSpace(arg), 64); err == nil {
				f, err = formatOf(v, l)
			}
		}
		if err != nil {
			return fmt.Errorf("bad argument %q: %w", arg, err)
		}
		log.Debug().Str("arg", arg).Str("fields", f.GoString()).Msg("inspecting")
		if err := p.line(strconv.FormatFloat(f.Float64(), 'g', -1, 64), f); err != nil {
			return err
		}
	}
	return nil
}
