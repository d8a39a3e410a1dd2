package synth

import (
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
)

type MetricSnapshots struct {
	*Generator
}

func NewMetricSnapshots(g *Generator) *MetricSnapshots {
	return &MetricSnapshots{Generator: g}
}

// Snapshot draws a new reading. Latency percentiles are fixed multiples of
// the average, never sampled on their own.
func (m *MetricSnapshots) Snapshot(serverIP string, windowMinutes int) domain.MetricSnapshot {
	windowMinutes = m.windowMinutes(windowMinutes)
	degraded := serverIP == DegradedIP

	var sr, avg, cpu, mem float64
	if degraded {
		sr = m.uniform(0.6, 0.8)
		avg = m.uniform(800, 1500)
		cpu = m.uniform(85, 98)
		mem = m.uniform(90, 95)
	} else {
		sr = m.uniform(0.98, 0.995)
		avg = m.uniform(50, 200)
		cpu = m.uniform(30, 60)
		mem = m.uniform(40, 70)
	}

	total := m.between(10000, 50000)
	timeline := []domain.TimelinePoint{
		{TimeOffset: -60, SuccessRate: 0.99},
		{TimeOffset: -30, SuccessRate: 0.98},
		{TimeOffset: 0, SuccessRate: sr},
	}
	if degraded {
		timeline[0].SuccessRate = sr - 0.1
		timeline[1].SuccessRate = sr - 0.2
	}

	return domain.MetricSnapshot{
		ServerIP:         serverIP,
		Timestamp:        m.now().UTC().Format(time.RFC3339),
		TimeRangeMinutes: windowMinutes,

		SuccessRate:    sr,
		ErrorRate:      1 - sr,
		TotalRequests:  total,
		FailedRequests: int((1 - sr) * float64(total)),

		AvgLatencyMs: avg,
		P50LatencyMs: avg * 0.7,
		P95LatencyMs: avg * 1.8,
		P99LatencyMs: avg * 2.5,

		CPUPercent:    cpu,
		MemoryPercent: mem,
		DiskIOPercent: m.uniform(5, 30),
		NetworkRxMbps: m.uniform(10, 100),
		NetworkTxMbps: m.uniform(5, 50),

		ActiveConnections: m.between(100, 500),
		ThreadPoolSize:    m.between(50, 200),
		QueueLength:       m.between(0, 50),

		DatabaseConnections: m.between(10, 100),
		DatabaseLatencyMs:   m.uniform(10, 100),
		CacheHitRate:        m.uniform(0.7, 0.95),

		Timeline: timeline,
	}
}
