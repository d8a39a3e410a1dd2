package domain

type TimelinePoint struct {
	TimeOffset  int     `json:"time_offset"`
	SuccessRate float64 `json:"success_rate"`
}

// MetricSnapshot is a one-shot performance reading. Nothing carries over between snapshots.
type MetricSnapshot struct {
	ServerIP         string `json:"server_ip"`
	Timestamp        string `json:"timestamp"`
	TimeRangeMinutes int    `json:"time_range_minutes"`

	SuccessRate    float64 `json:"success_rate"`
	ErrorRate      float64 `json:"error_rate"`
	TotalRequests  int     `json:"total_requests"`
	FailedRequests int     `json:"failed_requests"`

	AvgLatencyMs float64 `json:"avg_latency_ms"`
	P50LatencyMs float64 `json:"p50_latency_ms"`
	P95LatencyMs float64 `json:"p95_latency_ms"`
	P99LatencyMs float64 `json:"p99_latency_ms"`

	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskIOPercent float64 `json:"disk_io_percent"`
	NetworkRxMbps float64 `json:"network_rx_mbps"`
	NetworkTxMbps float64 `json:"network_tx_mbps"`

	ActiveConnections int `json:"active_connections"`
	ThreadPoolSize    int `json:"thread_pool_size"`
	QueueLength       int `json:"queue_length"`

	DatabaseConnections int     `json:"database_connections"`
	DatabaseLatencyMs   float64 `json:"database_latency_ms"`
	CacheHitRate        float64 `json:"cache_hit_rate"`

	Timeline []TimelinePoint `json:"timeline"`
}

// MetricNames lists the scalar metrics Value can resolve.
var MetricNames = []string{
	"success_rate", "error_rate", "total_requests", "failed_requests",
	"avg_latency_ms", "p50_latency_ms", "p95_latency_ms", "p99_latency_ms",
	"cpu_percent", "memory_percent", "disk_io_percent", "network_rx_mbps", "network_tx_mbps",
	"active_connections", "thread_pool_size", "queue_length",
	"database_connections", "database_latency_ms", "cache_hit_rate",
}

// Value returns the named scalar metric. The second result is false for unknown names.
func (m MetricSnapshot) Value(name string) (float64, bool) {
	switch name {
	case "success_rate":
		return m.SuccessRate, true
	case "error_rate":
		return m.ErrorRate, true
	case "total_requests":
		return float64(m.TotalRequests), true
	case "failed_requests":
		return float64(m.FailedRequests), true
	case "avg_latency_ms":
		return m.AvgLatencyMs, true
	case "p50_latency_ms":
		return m.P50LatencyMs, true
	case "p95_latency_ms":
		return m.P95LatencyMs, true
	case "p99_latency_ms":
		return m.P99LatencyMs, true
	case "cpu_percent":
		return m.CPUPercent, true
	case "memory_percent":
		return m.MemoryPercent, true
	case "disk_io_percent":
		return m.DiskIOPercent, true
	case "network_rx_mbps":
		return m.NetworkRxMbps, true
	case "network_tx_mbps":
		return m.NetworkTxMbps, true
	case "active_connections":
		return float64(m.ActiveConnections), true
	case "thread_pool_size":
		return float64(m.ThreadPoolSize), true
	case "queue_length":
		return float64(m.QueueLength), true
	case "database_connections":
		return float64(m.DatabaseConnections), true
	case "database_latency_ms":
		return m.DatabaseLatencyMs, true
	case "cache_hit_rate":
		return m.CacheHitRate, true
	}
	return 0, false
}
