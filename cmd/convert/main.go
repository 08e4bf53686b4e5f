package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"converter"
	"converter/config"
	"converter/form"
	"converter/metrics"
	converterrpc "converter/rpc"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.FromEnv()

	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		category    = fs.String("category", form.DefaultCategory, "Length|Temperature|Time|Volume.")
		from        = fs.String("from", "", "Input unit name (default: first unit of the category).")
		to          = fs.String("to", "", "Output unit name (default: first unit of the category).")
		list        = fs.Bool("list", false, "List categories and their units.")
		batch       = fs.Bool("batch", false, "Read msgpack requests on stdin, write msgpack responses on stdout.")
		strict      = fs.Bool("strict", cfg.Strict, "Fail on unrecognized category or unit names instead of passing the value through.")
		logLevel    = fs.String("log-level", "", "debug|info|warn|error.")
		metricsFile = fs.String("metrics-file", cfg.MetricsFile, "Write Prometheus textfile metrics here on exit.")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = config.ParseLevel(*logLevel)
	}
	logger := config.NewLogger(level)

	m := metrics.New()
	conv := converter.NewConverter(converter.WithLogger(logger), converter.WithRecorder(m))
	defer func() {
		if *metricsFile == "" {
			return
		}
		if err := m.WriteTextfile(*metricsFile); err != nil {
			logger.Error("failed to write metrics", "path", *metricsFile, "error", err)
		}
	}()

	switch {
	case *list:
		printCatalog(stdout)
		return 0
	case *batch:
		if err := converterrpc.NewHandler(conv, *strict, logger).Serve(ctx, stdin, stdout); err != nil {
			logger.Error("batch failed", "error", err)
			return 1
		}
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: convert [-category Length] [-from meter] [-to kilometer] [-strict] VALUE\n       convert -list\n       convert -batch < requests.msgpack")
		return 2
	}
	value, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(stderr, "invalid value %q: %v\n", fs.Arg(0), err)
		return 2
	}

	f := form.New(conv)
	if *category != f.Category {
		if err := f.SelectCategory(*category); err != nil {
			if *strict {
				fmt.Fprintln(stderr, err)
				return 1
			}
			f.Category = *category
		}
	}
	if *from != "" {
		f.SetInputUnit(*from)
	}
	if *to != "" {
		f.SetOutputUnit(*to)
	}
	f.SetInputValue(value)

	if *strict {
		v, err := conv.ConvertStrict(f.Category, f.InputUnit, f.OutputUnit, f.InputValue)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		f.OutputValue = v
	} else {
		f.Recompute()
	}
	fmt.Fprintln(stdout, f.Output())
	return 0
}

func printCatalog(w io.Writer) {
	for _, category := range converter.Categories() {
		f := form.New(nil)
		_ = f.SelectCategory(category)
		fmt.Fprintln(w, category)
		for _, label := range f.UnitLabels() {
			fmt.Fprintf(w, "  %s\n", label)
		}
	}
}
