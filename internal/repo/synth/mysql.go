package synth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
)

const mysqlLineCount = 80

var (
	mysqlQueries = []string{
		"SELECT * FROM users WHERE id=3;",
		"UPDATE products SET stock = stock - 1 WHERE id=10;",
		"INSERT INTO orders (user_id, amount) VALUES (2, 199.99);",
		"DELETE FROM carts WHERE user_id = 8;",
		"SELECT * FROM payments WHERE status='FAILED';",
		"SELECT COUNT(*) FROM logs WHERE level='ERROR';",
	}
	mysqlErrors = []string{
		"Deadlock found when trying to get lock",
		"Table doesn't exist",
		"Syntax error near 'FROM'",
		"Lock wait timeout exceeded",
		"Too many connections",
	}
)

type MySQLLogs struct {
	*Generator
}

func NewMySQLLogs(g *Generator) *MySQLLogs {
	return &MySQLLogs{Generator: g}
}

func (m *MySQLLogs) Source() domain.Source {
	return domain.SourceMySQL
}

// Generate returns slow/error log lines. Servers ending in "101" get one
// extra "Too many connections" error stamped at the window midpoint.
func (m *MySQLLogs) Generate(serverIP string, windowMinutes int) []domain.RawLogLine {
	start, _, span := m.window(windowMinutes)
	step := span / mysqlLineCount

	lines := make([]domain.RawLogLine, 0, mysqlLineCount+1)
	for i := range mysqlLineCount {
		ts := start.Add(time.Duration(i) * step).Format(mysqlTimeLayout)
		query := pick(m.Generator, mysqlQueries)

		var line string
		switch p := m.rnd.Float64(); {
		case p < 0.10:
			line = fmt.Sprintf(`%s [ERROR] [Query] duration=0s sql="%s" error="%s"`,
				ts, query, pick(m.Generator, mysqlErrors))
		case p < 0.30:
			line = fmt.Sprintf(`%s [WARN] [Deadlock] duration=%ss sql="%s" msg="Transaction deadlock occurred"`,
				ts, roundSeconds(m.uniform(1.0, 3.0), 2), query)
		case p < 0.60:
			line = fmt.Sprintf(`%s [WARN] [SlowQuery] duration=%ss sql="%s"`,
				ts, roundSeconds(m.uniform(1.0, 5.0), 2), query)
		default:
			line = fmt.Sprintf(`%s [INFO] [Query] duration=%ss sql="%s"`,
				ts, roundSeconds(m.uniform(0.01, 0.3), 3), query)
		}
		lines = append(lines, line)
	}

	if injectsFailure(serverIP) {
		ts := start.Add(span / 2).Format(mysqlTimeLayout)
		lines = append(lines, fmt.Sprintf(`%s [ERROR] [Query] duration=0s sql="SELECT * FROM users;" error="Too many connections"`, ts))
		if m.opts.SortInjected {
			sortByLeadingTime(lines)
		}
	}
	return lines
}

// roundSeconds rounds to the given precision and drops trailing zeros.
func roundSeconds(v float64, prec int) string {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', prec, 64), 64)
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
