package synth

import (
	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/repo/repoerrs"
)

var DiagnosisActions = []string{"processlist", "innodb_status", "variables", "connections"}

// MySQLDiagnostics serves canned runtime inspection payloads.
type MySQLDiagnostics struct{}

func NewMySQLDiagnostics() *MySQLDiagnostics {
	return &MySQLDiagnostics{}
}

func (MySQLDiagnostics) Actions() []string {
	out := make([]string, len(DiagnosisActions))
	copy(out, DiagnosisActions)
	return out
}

func (MySQLDiagnostics) Diagnose(serverIP, action string) (domain.DiagnosisReport, error) {
	switch action {
	case "processlist":
		return domain.DiagnosisReport{
			"type":      "processlist",
			"server_ip": serverIP,
			"processes": []map[string]any{
				{
					"id":       1234,
					"user":     "app_user",
					"db":       "order_db",
					"time_sec": 85,
					"state":    "Waiting for lock",
					"sql":      "UPDATE orders SET status='PAID' WHERE id=10001",
				},
				{
					"id":       1235,
					"user":     "report_user",
					"db":       "order_db",
					"time_sec": 2,
					"state":    "Sending data",
					"sql":      "SELECT * FROM orders WHERE created_at > NOW() - INTERVAL 1 DAY",
				},
			},
		}, nil
	case "innodb_status":
		return domain.DiagnosisReport{
			"type":      "innodb_status",
			"server_ip": serverIP,
			"latest_deadlock": map[string]any{
				"transaction_1": "UPDATE orders SET status='PAID' WHERE id=10001",
				"transaction_2": "UPDATE orders SET status='CANCEL' WHERE id=10001",
				"locked_table":  "orders",
				"locked_index":  "PRIMARY",
				"note":          "two transactions wait on each other's row lock",
			},
		}, nil
	case "variables":
		return domain.DiagnosisReport{
			"type":                "variables",
			"server_ip":           serverIP,
			"slow_query_log":      "ON",
			"slow_query_log_file": "/var/log/mysql/slow.log",
			"long_query_time":     2,
			"max_connections":     500,
		}, nil
	case "connections":
		return domain.DiagnosisReport{
			"type":              "connections",
			"server_ip":         serverIP,
			"threads_connected": 480,
			"threads_running":   120,
			"max_connections":   500,
			"warning":           "connection count is close to max_connections",
		}, nil
	}
	return nil, repoerrs.ErrNotFound
}
