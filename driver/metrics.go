// SPDX-License-Identifier: MIT

package driver

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricRunDuration   = "qmcpaths_strategy_duration_seconds"
	metricPathsTotal    = "qmcpaths_paths_generated_total"
	metricMismatchTotal = "qmcpaths_baseline_mismatch_total"
	metricFailureTotal  = "qmcpaths_strategy_failures_total"
	labelStrategy       = "strategy"
)

type runMetrics struct {
	duration   *prometheus.SummaryVec
	paths      *prometheus.CounterVec
	mismatches *prometheus.CounterVec
	failures   *prometheus.CounterVec
}

// initMetrics builds the driver collectors and registers them on reg.
// A collector that is already registered (a second Run on the same registry)
// is replaced by the existing one so counts keep accumulating.
func initMetrics(reg prometheus.Registerer) (*runMetrics, error) {
	var collectors = map[string]prometheus.Collector{
		metricRunDuration: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       metricRunDuration,
				Help:       "Wall-clock duration of one strategy run",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{labelStrategy},
		),
		metricPathsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPathsTotal,
				Help: "Number of paths generated per strategy",
			},
			[]string{labelStrategy},
		),
		metricMismatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricMismatchTotal,
				Help: "Number of runs whose results differ from the sequential baseline",
			},
			[]string{labelStrategy},
		),
		metricFailureTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricFailureTotal,
				Help: "Number of strategy runs that returned an error",
			},
			[]string{labelStrategy},
		),
	}

	if err := registerMetrics(reg, collectors); err != nil {
		return nil, err
	}

	return &runMetrics{
		duration:   collectors[metricRunDuration].(*prometheus.SummaryVec),
		paths:      collectors[metricPathsTotal].(*prometheus.CounterVec),
		mismatches: collectors[metricMismatchTotal].(*prometheus.CounterVec),
		failures:   collectors[metricFailureTotal].(*prometheus.CounterVec),
	}, nil
}

func registerMetrics(reg prometheus.Registerer, m map[string]prometheus.Collector) error {
	for name, metric := range m {
		err := reg.Register(metric)
		var are prometheus.AlreadyRegisteredError
		switch {
		case err == nil:
		case errors.As(err, &are):
			m[name] = are.ExistingCollector
		default:
			return err
		}
	}

	return nil
}
