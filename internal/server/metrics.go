package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of a game session. A private
// registry avoids duplicate-collector panics when NewMetrics runs more
// than once (e.g. in tests).
type Metrics struct {
	Registry *prometheus.Registry

	sealsTotal    *prometheus.CounterVec
	missionsTotal *prometheus.CounterVec
	daysTotal     prometheus.Counter
	monthsTotal   prometheus.Counter
}

// NewMetrics creates a dedicated registry with all session metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		sealsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contada_seals_total",
				Help: "Seal attempts by result status.",
			},
			[]string{"status"},
		),
		missionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contada_missions_total",
				Help: "Mission resolutions by kind.",
			},
			[]string{"resolution"},
		),
		daysTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "contada_days_total",
				Help: "Days elapsed.",
			},
		),
		monthsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "contada_months_total",
				Help: "Months closed.",
			},
		),
	}
}

// IncrSeal counts a seal attempt by its result status.
func (m *Metrics) IncrSeal(status string) {
	m.sealsTotal.WithLabelValues(status).Inc()
}

// IncrMission counts a mission resolution.
func (m *Metrics) IncrMission(resolution string) {
	m.missionsTotal.WithLabelValues(resolution).Inc()
}

// IncrDay counts an elapsed day and, when the month closed, a month.
func (m *Metrics) IncrDay(monthClosed bool) {
	m.daysTotal.Inc()
	if monthClosed {
		m.monthsTotal.Inc()
	}
}
