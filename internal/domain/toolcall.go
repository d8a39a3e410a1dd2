package domain

import (
	"encoding/json"
	"time"
)

const (
	CallStatusOK    = "ok"
	CallStatusError = "error"
)

type ToolCall struct {
	ID          string          `db:"id" json:"id"`
	Tool        string          `db:"tool" json:"tool"`
	Arguments   json.RawMessage `db:"arguments" json:"arguments"`
	Status      string          `db:"status" json:"status"`
	ResultCount int             `db:"result_count" json:"result_count"`
	Duration    time.Duration   `db:"duration_ms" json:"duration"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type StatusStats struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type ToolStats struct {
	Tool          string        `json:"tool"`
	TotalCalls    int           `json:"total_calls"`
	CallsByStatus []StatusStats `json:"calls_by_status"`
}

// DiagnosisReport is a mocked runtime inspection payload.
type DiagnosisReport map[string]any
