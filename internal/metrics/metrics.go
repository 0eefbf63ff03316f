// Package metrics exposes the statistics of a conversion run as Prometheus gauges so
// that asset pipelines can collect them through the node_exporter textfile collector.
package metrics

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "osm2map"

// RunCollector bundles the gauges describing a single conversion run.
type RunCollector struct {
	gatherer prometheus.Gatherer

	Counters *prometheus.GaugeVec
	Duration prometheus.Gauge
}

// NewRunCollector registers run metrics against the provided registerer, defaulting
// to a fresh private registry when nil.
func NewRunCollector(reg prometheus.Registerer) (*RunCollector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	counters := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "run_entities",
		Help:      "Entity counters of the last conversion run, labeled by counter name.",
	}, []string{"counter"})
	if err := reg.Register(counters); err != nil {
		return nil, errors.Wrap(err, "Can't register run_entities")
	}

	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of the last conversion run.",
	})
	if err := reg.Register(duration); err != nil {
		return nil, errors.Wrap(err, "Can't register run_duration_seconds")
	}

	return &RunCollector{
		gatherer: gatherer,
		Counters: counters,
		Duration: duration,
	}, nil
}

// Record sets one gauge sample per counter.
func (c *RunCollector) Record(counters map[string]float64, seconds float64) {
	if c == nil {
		return
	}
	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.Counters.WithLabelValues(name).Set(counters[name])
	}
	c.Duration.Set(seconds)
}

// WriteTextfile dumps every gathered metric in the Prometheus text exposition format.
func (c *RunCollector) WriteTextfile(fname string) error {
	if c == nil {
		return errors.New("nil collector")
	}
	err := prometheus.WriteToTextfile(fname, c.gatherer)
	if err != nil {
		return errors.Wrapf(err, "Can't write metrics to '%s'", fname)
	}
	return nil
}
