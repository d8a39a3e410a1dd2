package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/repo"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
)

var metricAliases = map[string]string{
	"cpu":             "cpu_percent",
	"cpu_usage":       "cpu_percent",
	"cpu_usage_total": "cpu_percent",
	"memory":          "memory_percent",
	"mem":             "memory_percent",
	"disk":            "disk_io_percent",
	"disk_io":         "disk_io_percent",
	"success":         "success_rate",
	"error":           "error_rate",
	"errors":          "error_rate",
	"latency":         "avg_latency_ms",
	"response_time":   "avg_latency_ms",
	"p50":             "p50_latency_ms",
	"p95":             "p95_latency_ms",
	"p99":             "p99_latency_ms",
}

type MetricService struct {
	metrics       repo.Metrics
	windowMinutes int
}

func NewMetricService(m repo.Metrics, windowMinutes int) *MetricService {
	return &MetricService{metrics: m, windowMinutes: windowMinutes}
}

func (s *MetricService) Snapshot(_ context.Context, serverIP string, windowMinutes int) domain.MetricSnapshot {
	return s.metrics.Snapshot(serverIP, windowMinutes)
}

// Metric resolves name, or one of its aliases, against a fresh snapshot.
func (s *MetricService) Metric(_ context.Context, serverIP, name string) (map[string]float64, error) {
	key := ResolveMetricName(name)

	snap := s.metrics.Snapshot(serverIP, s.windowMinutes)
	v, ok := snap.Value(key)
	if !ok {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %q", ErrUnknownMetric, name))
	}
	return map[string]float64{key: v}, nil
}

func (s *MetricService) Names() []string {
	out := make([]string, len(domain.MetricNames))
	copy(out, domain.MetricNames)
	return out
}

func ResolveMetricName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := metricAliases[key]; ok {
		return alias
	}
	return key
}
