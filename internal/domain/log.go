package domain

type Source string

const (
	SourceNginx Source = "nginx"
	SourceMySQL Source = "mysql"
	SourceRedis Source = "redis"
)

func (s Source) Valid() bool {
	switch s {
	case SourceNginx, SourceMySQL, SourceRedis:
		return true
	}
	return false
}

const (
	SeverityInfo  = "INFO"
	SeverityWarn  = "WARN"
	SeverityError = "ERROR"
)

// RawLogLine is a synthesized line in its source-specific text grammar.
type RawLogLine = string

type UnifiedLogRecord struct {
	Source    Source  `json:"source"`
	ServerIP  string  `json:"server_ip"`
	Timestamp string  `json:"timestamp"`
	Severity  string  `json:"severity"`
	Operation string  `json:"operation"`
	Status    string  `json:"status"`
	LatencyMs float64 `json:"latency_ms"`
	Raw       string  `json:"raw"`
}

// LogQuery carries the caller-supplied filters of one log pull.
type LogQuery struct {
	ServerIP      string
	WindowMinutes int
	Endpoint      string
	Keywords      []string
	MinDurationS  float64
	StartTime     string
	EndTime       string
	Limit         int
}

type LogPage struct {
	Records    []UnifiedLogRecord `json:"records"`
	NextCursor *string            `json:"next_cursor"`
	Matched    int                `json:"matched"`
	Skipped    int                `json:"skipped"`
}
