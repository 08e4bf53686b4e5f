package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts conversions and identity passthroughs. It implements
// converter.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	Conversions *prometheus.CounterVec
	Fallbacks   *prometheus.CounterVec
}

// New creates the metrics on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "converter_conversions_total",
			Help: "Total conversions by category",
		}, []string{"category"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "converter_fallbacks_total",
			Help: "Unrecognized names passed through unchanged, by category and hop",
		}, []string{"category", "hop"}), // hop: "category", "input", "output"
	}
	m.registry.MustRegister(m.Conversions, m.Fallbacks)
	return m
}

func (m *Metrics) ObserveConversion(category string) {
	if m != nil {
		m.Conversions.WithLabelValues(category).Inc()
	}
}

func (m *Metrics) ObserveFallback(category, hop string) {
	if m != nil {
		m.Fallbacks.WithLabelValues(category, hop).Inc()
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current values in the node exporter textfile
// format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
