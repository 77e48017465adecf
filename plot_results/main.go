// Command plot_results charts red-black tree benchmark results.
//
//	plot_results results.csv
//
// The CSV needs n, insert_time and delete_time columns. The chart is written
// to time_complexity_plot.png in the same directory and then opened in the
// default viewer when a display is available. Set RBPLOT_NO_SHOW to skip the
// viewer and RBPLOT_LOG_LEVEL to change verbosity.
package main

import (
	"errors"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"berkotech.co/rbplot/chart"
	"berkotech.co/rbplot/complexity"
)

const (
	exitOK = iota
	_
	exitUsage
	exitMissingInput
	exitMalformedData
	exitDegenerateScale
	exitRender
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stderr))
}

func newLogger(getenv func(string) string, out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if s := getenv("RBPLOT_LOG_LEVEL"); s != "" {
		lvl, err := log.ParseLevel(s)
		if err != nil {
			logger.WithError(err).Warn("ignoring RBPLOT_LOG_LEVEL")
		} else {
			logger.SetLevel(lvl)
		}
	}
	return logger
}

func run(args []string, getenv func(string) string, stderr io.Writer) int {
	logger := newLogger(getenv, stderr)
	if len(args) < 1 {
		logger.Error("usage: plot_results <results.csv>")
		return exitUsage
	}
	csvPath := args[0]
	if len(args) > 1 {
		logger.WithField("args", args[1:]).Warn("ignoring extra arguments")
	}

	tbl, err := complexity.Load(csvPath)
	if err != nil {
		logger.Error(err)
		return exitCode(err)
	}
	logger.WithFields(log.Fields{"path": csvPath, "rows": tbl.Len()}).Info("loaded table")
	if !tbl.Ascending() {
		logger.Warn("n is not ascending; rows are plotted in file order")
	}

	s, err := complexity.Prepare(tbl)
	if err != nil {
		logger.Error(err)
		return exitCode(err)
	}
	for _, c := range []struct {
		name  string
		times []float64
	}{{"insertion", s.Insert}, {"deletion", s.Delete}} {
		if k, ok := complexity.GrowthExponent(s.N, c.times); ok {
			logger.WithField("series", c.name).Infof("time grows as n^%.2f", k)
		}
	}

	opts := chart.DefaultOptions()
	p, err := chart.New(s, opts)
	if err != nil {
		logger.Error(err)
		return exitCode(err)
	}
	out := chart.OutputPath(csvPath)
	if err := chart.Save(p, opts, out); err != nil {
		logger.Error(err)
		return exitCode(err)
	}
	logger.WithField("path", out).Info("saved chart")

	if getenv("RBPLOT_NO_SHOW") == "" {
		chart.Show(out, getenv, logger)
	}
	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, complexity.ErrMissingInput):
		return exitMissingInput
	case errors.Is(err, complexity.ErrMalformedData):
		return exitMalformedData
	case errors.Is(err, complexity.ErrDegenerateScale):
		return exitDegenerateScale
	}
	return exitRender
}
