package quill

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts engine activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	gestures  *prometheus.CounterVec
	cancelled prometheus.Counter
	commits   prometheus.Counter
	undos     prometheus.Counter
	redos     prometheus.Counter
	zoom      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		gestures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quill",
			Name:      "gestures_total",
			Help:      "Gestures started, by interaction mode.",
		}, []string{"mode"}),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quill",
			Name:      "gestures_cancelled_total",
			Help:      "Gestures ended by pointer cancel or pinch takeover.",
		}),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quill",
			Name:      "commits_total",
			Help:      "Commit requests issued to the element store.",
		}),
		undos: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quill",
			Name:      "undo_total",
			Help:      "Successful undo steps.",
		}),
		redos: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quill",
			Name:      "redo_total",
			Help:      "Successful redo steps.",
		}),
		zoom: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quill",
			Name:      "zoom",
			Help:      "Current board zoom factor.",
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.gestures, m.cancelled, m.commits, m.undos, m.redos, m.zoom} {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("register metrics: %w", err)
			}
		}
	}
	return m, nil
}

func (m *Metrics) gestureStarted(mode InteractionMode) {
	if m != nil {
		m.gestures.WithLabelValues(mode.kind()).Inc()
	}
}

func (m *Metrics) gestureCancelled() {
	if m != nil {
		m.cancelled.Inc()
	}
}

func (m *Metrics) committed() {
	if m != nil {
		m.commits.Inc()
	}
}

func (m *Metrics) undone() {
	if m != nil {
		m.undos.Inc()
	}
}

func (m *Metrics) redone() {
	if m != nil {
		m.redos.Inc()
	}
}

func (m *Metrics) zoomed(z float64) {
	if m != nil {
		m.zoom.Set(z)
	}
}
