package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
)

const namespace = "vi_snake"

// Registry is the in-process metrics facade
// Each instance owns its prometheus registry so tests and binaries never share state
type Registry struct {
	reg *prometheus.Registry

	Ticks      prometheus.Counter
	Consumed   prometheus.Counter
	Runs       prometheus.Counter
	Fallbacks  prometheus.Counter
	Ended      *prometheus.CounterVec
	Score      prometheus.Gauge
	BestScore  prometheus.Gauge
	BodyLength prometheus.Gauge
}

// NewRegistry creates and registers all game metrics
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Logic ticks executed",
		}),
		Consumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_consumed_total",
			Help:      "Targets eaten",
		}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Runs started",
		}),
		Fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placement_fallbacks_total",
			Help:      "Targets placed on the body after exhausting attempts",
		}),
		Ended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_ended_total",
			Help:      "Runs ended by collision cause",
		}, []string{"cause"}),
		Score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Current run score",
		}),
		BestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_score",
			Help:      "Best score this session",
		}),
		BodyLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "body_length",
			Help:      "Current body length in cells",
		}),
	}

	r.reg.MustRegister(r.Ticks, r.Consumed, r.Runs, r.Fallbacks, r.Ended, r.Score, r.BestScore, r.BodyLength)
	return r
}

// Prometheus exposes the underlying registry as a gatherer
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.reg
}

// OnReset counts the run and flags an overlapping initial target
func (r *Registry) OnReset(_ string, snap game.Snapshot) {
	r.Runs.Inc()
	if core.IndexOf(snap.Body, snap.Target, 0) >= 0 {
		r.Fallbacks.Inc()
	}
	r.observe(snap)
}

// OnStep counts the tick and its outcome
func (r *Registry) OnStep(result game.StepResult, snap game.Snapshot) {
	r.Ticks.Inc()

	switch result.Outcome {
	case game.OutcomeConsumed:
		r.Consumed.Inc()
		if result.Fallback {
			r.Fallbacks.Inc()
		}
	case game.OutcomeEnded:
		r.Ended.WithLabelValues(result.Cause.String()).Inc()
	}

	r.observe(snap)
}

func (r *Registry) observe(snap game.Snapshot) {
	r.Score.Set(float64(snap.Score))
	r.BestScore.Set(float64(snap.Best))
	r.BodyLength.Set(float64(len(snap.Body)))
}

// Sample is one gathered metric value
type Sample struct {
	Name   string
	Labels string // "k=v,k=v", empty when unlabelled
	Value  float64
}

// Gather reads every metric back, ordered by name then labels
func (r *Registry) Gather() ([]Sample, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			out = append(out, Sample{
				Name:   mf.GetName(),
				Labels: labelString(m.GetLabel()),
				Value:  metricValue(mf.GetType(), m),
			})
		}
	}
	return out, nil
}

// Value returns a single sample by name and labels, false when absent
func (r *Registry) Value(name, labels string) (float64, bool) {
	samples, err := r.Gather()
	if err != nil {
		return 0, false
	}
	for _, s := range samples {
		if s.Name == name && s.Labels == labels {
			return s.Value, true
		}
	}
	return 0, false
}

// WriteSummary prints one line per sample
func (r *Registry) WriteSummary(w io.Writer) error {
	samples, err := r.Gather()
	if err != nil {
		return err
	}
	for _, s := range samples {
		name := s.Name
		if s.Labels != "" {
			name += "{" + s.Labels + "}"
		}
		if _, err := fmt.Fprintf(w, "%-48s %g\n", name, s.Value); err != nil {
			return err
		}
	}
	return nil
}

func labelString(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue()
	}
	return 0
}
