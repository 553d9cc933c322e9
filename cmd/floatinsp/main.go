package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avdva/floatinsp"
)

var (
	precision = flag.String("precision", "double", "Floating-point format to inspect (half, single, double)")
	exact     = flag.Bool("exact", false, "Append the exact decimal expansion of the scientific form")
	logLevel  = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [value|bits ...]\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "Without arguments, prints 1, 1.5, 1.7, and then 1 halved until it becomes zero.")
	flag.PrintDefaults()
}

func main() {
	// Initialize logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	flag.Usage = usage
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", *logLevel).Msg("Bad log level")
	}
	zerolog.SetGlobalLevel(level)

	layout, err := floatinsp.LayoutByName(*precision)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad precision")
	}
	log.Info().Stringer("layout", layout).Bool("exact", *exact).Int("args", flag.NArg()).Msg("Starting")

	out := bufio.NewWriter(os.Stdout)
	p := &printer{w: out, exact: *exact}
	if flag.NArg() > 0 {
		err = p.inspect(flag.Args(), layout)
	} else {
		err = p.demo(layout)
	}
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Inspection failed")
	}
}
