package logparse

import (
	"regexp"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
)

var (
	mysqlSeverityRe = regexp.MustCompile(`\[(INFO|WARN|ERROR)\]`)
	mysqlSQLRe      = regexp.MustCompile(`sql="([^"]+)"`)
	mysqlDurationRe = regexp.MustCompile(`duration=([\d.]+)s`)
)

// leadingTime reads the fixed-width "2006-01-02 15:04:05" prefix shared by MySQL and Redis lines.
func leadingTime(line string) (time.Time, bool) {
	if len(line) < len(RecordTimeLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(RecordTimeLayout, line[:len(RecordTimeLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func mysqlSeconds(line string) (float64, bool) {
	m := mysqlDurationRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return parseNonNegative(m[1]), true
}

func parseMySQL(line string) (domain.UnifiedLogRecord, error) {
	ts, ok := leadingTime(line)
	if !ok {
		return domain.UnifiedLogRecord{}, &ParseError{Source: domain.SourceMySQL, Field: FieldTimestamp, Line: line}
	}

	severity := domain.SeverityInfo
	if m := mysqlSeverityRe.FindStringSubmatch(line); m != nil {
		severity = m[1]
	}

	sql := UnknownSQL
	if m := mysqlSQLRe.FindStringSubmatch(line); m != nil {
		sql = m[1]
	}

	seconds, _ := mysqlSeconds(line)

	return domain.UnifiedLogRecord{
		Timestamp: ts.Format(RecordTimeLayout),
		Severity:  severity,
		Operation: sql,
		Status:    statusFor(severity),
		LatencyMs: seconds * 1000,
	}, nil
}

func statusFor(severity string) string {
	if severity == domain.SeverityError {
		return StatusError
	}
	return StatusOK
}
