package pipeline

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the build counters. They are exposed over /metrics by the
// serve command; a nil *Metrics disables collection.
type Metrics struct {
	AutomataParsed   prometheus.Counter
	PhrasesGenerated prometheus.Counter
	RenderFailures   *prometheus.CounterVec
	ModulesComposed  prometheus.Counter
}

// NewMetrics creates and registers the build counters. Passing nil
// registers on the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		AutomataParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voxdoc_automata_parsed_total",
			Help: "Automaton files successfully parsed.",
		}),
		PhrasesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voxdoc_phrases_generated_total",
			Help: "Example phrases generated across all automata.",
		}),
		RenderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voxdoc_render_failures_total",
			Help: "Image rendering failures by kind.",
		}, []string{"kind"}),
		ModulesComposed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voxdoc_modules_composed_total",
			Help: "Dispatch automata rewritten by the composer.",
		}),
	}
	reg.MustRegister(m.AutomataParsed, m.PhrasesGenerated, m.RenderFailures, m.ModulesComposed)
	return m
}

func (m *Metrics) automatonParsed() {
	if m != nil {
		m.AutomataParsed.Inc()
	}
}

func (m *Metrics) phrases(n int) {
	if m != nil {
		m.PhrasesGenerated.Add(float64(n))
	}
}

func (m *Metrics) renderFailed(kind string) {
	if m != nil {
		m.RenderFailures.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) composed() {
	if m != nil {
		m.ModulesComposed.Inc()
	}
}
