package logparse

import (
	"regexp"
	"strconv"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
)

const NginxTimeLayout = "02/Jan/2006:15:04:05 -0700"

var (
	nginxRequestRe = regexp.MustCompile(`"(GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS)\s+([^\s?"]+)`)
	nginxStatusRe  = regexp.MustCompile(`"\s+(\d{3})\s+`)
	nginxRTRe      = regexp.MustCompile(`\s([\d.]+)$`)
	nginxTimeRe    = regexp.MustCompile(`\[(.*?)\]`)
)

func nginxTime(line string) (time.Time, bool) {
	m := nginxTimeRe.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(NginxTimeLayout, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// nginxResponseSeconds reads the trailing request time.
func nginxResponseSeconds(line string) (float64, bool) {
	m := nginxRTRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseNginx(line string) (domain.UnifiedLogRecord, error) {
	ts, ok := nginxTime(line)
	if !ok {
		return domain.UnifiedLogRecord{}, &ParseError{Source: domain.SourceNginx, Field: FieldTimestamp, Line: line}
	}

	method, path := UnknownMethod, UnknownPath
	if m := nginxRequestRe.FindStringSubmatch(line); m != nil {
		method, path = m[1], m[2]
	}

	status := UnknownStatus
	if m := nginxStatusRe.FindStringSubmatch(line); m != nil {
		status = m[1]
	}

	severity := domain.SeverityInfo
	if code, _ := strconv.Atoi(status); code >= 500 {
		severity = domain.SeverityError
	}

	rt, _ := nginxResponseSeconds(line)

	return domain.UnifiedLogRecord{
		Timestamp: ts.Format(RecordTimeLayout),
		Severity:  severity,
		Operation: method + " " + path,
		Status:    status,
		LatencyMs: rt * 1000,
	}, nil
}
