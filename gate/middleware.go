package gate

import (
	"net/http"

	"github.com/jrsteele09/fringe-portal/internal/redirect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Metrics counts gate decisions by area and outcome.
type Metrics struct {
	Decisions *prometheus.CounterVec
}

// NewMetrics creates the gate metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fringe_gate_decisions_total",
				Help: "Total number of route gate decisions",
			},
			[]string{"area", "outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Decisions)
	}
	return m
}

func (m *Metrics) observe(d Decision) {
	if m == nil {
		return
	}
	area := d.Area
	if area == "" {
		area = "none"
	}
	m.Decisions.WithLabelValues(area, d.Outcome.String()).Inc()
}

// Middleware evaluates every request before next runs. Redirects are written
// with the HTMX-aware redirect helper. metrics may be nil.
func (g *Gate) Middleware(metrics *Metrics) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			d := g.Evaluate(r.URL.Path, r)
			metrics.observe(d)

			if d.Area != "" {
				log.Debug().
					Str("area", d.Area).
					Str("outcome", d.Outcome.String()).
					Str("path", r.URL.Path).
					AnErr("reason", d.Reason).
					Msg("gate decision")
			}

			if d.Outcome == Allow {
				next(w, r)
				return
			}
			redirect.To(w, r, d.Location)
		}
	}
}
