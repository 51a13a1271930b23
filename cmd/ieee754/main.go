// Command ieee754 prints the IEEE-754 encoding of exact decimal numbers.
//
//	ieee754 -precision half 13.375
//	ieee754 -exponent 6 -mantissa 12 -json 0.1
//	ieee754 -precision single -decode "0 10000010 10101100000000000000000"
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/ieee754"
	"github.com/calebcase/ieee754/internal/logger"
	"github.com/calebcase/ieee754/layout"
)

// Error is the class for command line errors.
var Error = errs.Class("ieee754")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// precision parses a preset given by name, abbreviation or index.
func precision(s string) (int, error) {
	if p, ok := layout.Presets.Match(s); ok {
		return p.Index, nil
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, layout.ErrPresetOutOfRange.New("unknown preset %q", s)
	}

	_, err = layout.Presets.Index(i)
	if err != nil {
		return 0, err
	}

	return i, nil
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("ieee754", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		preset    = fs.String("precision", "half", "preset name, abbreviation or index (half, single, double, quadruple, octuple)")
		exponent  = fs.Int("exponent", 0, "exponent bits, overrides the preset")
		mantissa  = fs.Int("mantissa", 0, "mantissa bits, overrides the preset")
		asJSON    = fs.Bool("json", false, "print the full report as JSON")
		decode    = fs.Bool("decode", false, "arguments are bit strings to decode")
		against   = fs.String("original", "", "with -decode, report the error against this number")
		digits    = fs.Int("digits", 0, "significant digits of decoded values (default 256)")
		limit     = fs.Int("limit", 0, "maximum number of doublings (default depends on the layout)")
		strict    = fs.Bool("strict", false, "fail when a value has no exact binary expansion")
		logLevel  = fs.String("log-level", "warn", "log level (debug, info, warn, error, off)")
		logFormat = fs.String("log-format", "console", "log format (console, json)")
	)

	err = fs.Parse(args)
	if err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()

		return Error.New("no numbers given")
	}

	index, err := precision(*preset)
	if err != nil {
		return err
	}

	l, err := layout.Schema{
		Precision:    index,
		ExponentBits: *exponent,
		MantissaBits: *mantissa,
	}.Resolve()
	if err != nil {
		return err
	}

	opts := []ieee754.Option{
		ieee754.WithLogger(logger.Setup(*logLevel, *logFormat, stderr)),
	}

	if *digits > 0 {
		opts = append(opts, ieee754.WithPrecision(*digits))
	}

	if *limit > 0 {
		opts = append(opts, ieee754.WithScaleLimit(*limit))
	}

	if *strict {
		opts = append(opts, ieee754.WithStrictScaling())
	}

	for _, arg := range fs.Args() {
		if *decode {
			err = printDecoded(stdout, arg, *against, l, opts)
		} else {
			err = printEncoded(stdout, arg, *asJSON, l, opts)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func printEncoded(w io.Writer, number string, asJSON bool, l layout.Layout, opts []ieee754.Option) error {
	r, err := ieee754.EncodeLayout(number, l, opts...)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := r.Report().JSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%s\n", data)

		return Error.Wrap(err)
	}

	d := r.Decoded()

	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n%s\n", r, r.Hex(), d.Value, d.Error)

	return Error.Wrap(err)
}

func printDecoded(w io.Writer, bits, original string, l layout.Layout, opts []ieee754.Option) error {
	if original == "" {
		d, err := ieee754.Decode(bits, l, opts...)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%s\n", d.Value)

		return Error.Wrap(err)
	}

	d, err := ieee754.DecodeAgainst(bits, l, original, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n%s\n", d.Value, d.Error)

	return Error.Wrap(err)
}
