package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
	Add(v float64, labels ...string)
}

type Counters struct {
	ToolCalls      Counter
	LinesGenerated Counter
	ParseFailures  Counter

	GrpcRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logiprobe",
		Name:      name,
		Help:      help,
	}, labels)
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{counter: newCounterVec(name, help, labels)}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(v float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(v)
}

func newCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		ToolCalls: NewPrometheusCounter(reg,
			"tool_calls_total",
			"Number of tool calls served",
			[]string{"tool", "status"},
		),
		LinesGenerated: NewPrometheusCounter(reg,
			"log_lines_generated_total",
			"Number of synthetic log lines generated",
			[]string{"source"},
		),
		ParseFailures: NewPrometheusCounter(reg,
			"parse_failures_total",
			"Number of log lines the normalizer skipped",
			[]string{"source"},
		),
		GrpcRequests: NewPrometheusCounter(reg,
			"grpc_requests_total",
			"Number of gRPC tool requests",
			[]string{"method", "status"},
		),
	}
}

func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

// NewTestCounters registers on a private registry so tests can build many.
func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}
