package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the registry's prometheus instrumentation.
type Metrics struct {
	Registrations   prometheus.Counter
	Heartbeats      prometheus.Counter
	Deregistrations *prometheus.CounterVec
	ActiveInstances prometheus.Gauge
}

// NewMetrics creates the registry metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "myregistry_registrations_total",
			Help: "Total number of successful register operations.",
		}),
		Heartbeats: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "myregistry_heartbeats_total",
			Help: "Total number of successful heartbeat operations.",
		}),
		Deregistrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "myregistry_deregistrations_total",
			Help: "Total number of removed instances by reason.",
		}, []string{"reason"}),
		ActiveInstances: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "myregistry_active_instances",
			Help: "Number of currently registered instances.",
		}),
	}
	reg.MustRegister(m.Registrations, m.Heartbeats, m.Deregistrations, m.ActiveInstances)
	return m
}
