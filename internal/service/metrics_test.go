package service_test

import (
	"context"
	"testing"

	"github.com/Egor213/LogiProbe/internal/domain"
	repository_mock "github.com/Egor213/LogiProbe/internal/mocks/repository"
	"github.com/Egor213/LogiProbe/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMetricService_Metric(t *testing.T) {
	snap := domain.MetricSnapshot{
		ServerIP:      "10.0.2.101",
		SuccessRate:   0.7,
		ErrorRate:     0.3,
		AvgLatencyMs:  1000,
		P95LatencyMs:  1800,
		CPUPercent:    91,
		MemoryPercent: 93,
		DiskIOPercent: 12,
	}

	testCases := []struct {
		name    string
		metric  string
		want    map[string]float64
		wantErr bool
	}{
		{name: "alias cpu", metric: "CPU", want: map[string]float64{"cpu_percent": 91}},
		{name: "alias disk", metric: "disk", want: map[string]float64{"disk_io_percent": 12}},
		{name: "alias error", metric: "error", want: map[string]float64{"error_rate": 0.3}},
		{name: "alias latency", metric: " latency ", want: map[string]float64{"avg_latency_ms": 1000}},
		{name: "percentile", metric: "p95", want: map[string]float64{"p95_latency_ms": 1800}},
		{name: "canonical", metric: "memory_percent", want: map[string]float64{"memory_percent": 93}},
		{name: "unknown", metric: "disk_percent", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := repository_mock.NewMockMetrics(ctrl)
			m.EXPECT().Snapshot("10.0.2.101", 60).Return(snap)

			s := service.NewMetricService(m, 60)
			got, err := s.Metric(context.Background(), "10.0.2.101", tc.metric)

			if tc.wantErr {
				assert.ErrorIs(t, err, service.ErrUnknownMetric)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMetricService_Names(t *testing.T) {
	s := service.NewMetricService(nil, 60)

	names := s.Names()
	assert.Contains(t, names, "success_rate")
	assert.Contains(t, names, "cache_hit_rate")

	names[0] = "mutated"
	assert.Equal(t, "success_rate", s.Names()[0])
}

func TestResolveMetricName(t *testing.T) {
	assert.Equal(t, "cpu_percent", service.ResolveMetricName("cpu_usage_total"))
	assert.Equal(t, "memory_percent", service.ResolveMetricName("Mem"))
	assert.Equal(t, "something", service.ResolveMetricName("something"))
}
