// SPDX-License-Identifier: MIT

// Command qmcpaths generates quasi-random Brownian paths under every
// concurrency strategy, times each one and checks it against the sequential
// baseline.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/katalvlaran/qmcpaths/driver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// errMismatch is returned when a strategy did not reproduce the baseline.
var errMismatch = errors.New("qmcpaths: results differ from the sequential baseline")

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// realMain is the real main function. It is necessary to work around the
// fact that deferred functions do not run when os.Exit() is called.
func realMain(args []string) error {
	cfg, _, err := loadConfig(args)
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	log.Infof("Version %s", version())

	dcfg, err := cfg.driverConfig()
	if err != nil {
		log.Errorf("Invalid configuration: %v", err)
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []driver.Option{driver.WithRegisterer(reg)}
	if cfg.Dump {
		opts = append(opts, driver.WithDump(os.Stdout))
	}

	sum, err := driver.Run(dcfg, opts...)
	if sum != nil {
		if werr := sum.WriteTable(os.Stdout); werr != nil {
			log.Errorf("Unable to write summary: %v", werr)
		}
	}
	if err != nil {
		log.Errorf("Run failed: %v", err)
		return err
	}

	if cfg.Metrics {
		if err = writeMetrics(os.Stdout, reg); err != nil {
			log.Errorf("Unable to write metrics: %v", err)
			return err
		}
	}

	if !sum.AllMatch() {
		log.Error(errMismatch)
		return errMismatch
	}

	return nil
}

// writeMetrics encodes everything gathered by g in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err = enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
