package logparse

import (
	"regexp"

	"github.com/Egor213/LogiProbe/internal/domain"
)

const redisSlowlogTag = "SLOWLOG"

var (
	redisSeverityRe = regexp.MustCompile(`\[(INFO|WARN|ERROR|SLOWLOG)\]`)
	redisCommandRe  = regexp.MustCompile(`command="([^"]+)"`)
	redisDurationRe = regexp.MustCompile(`duration=(\d+)ms`)
)

func redisMillis(line string) (float64, bool) {
	m := redisDurationRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return parseNonNegative(m[1]), true
}

func parseRedis(line string) (domain.UnifiedLogRecord, error) {
	ts, ok := leadingTime(line)
	if !ok {
		return domain.UnifiedLogRecord{}, &ParseError{Source: domain.SourceRedis, Field: FieldTimestamp, Line: line}
	}

	severity := domain.SeverityInfo
	if m := redisSeverityRe.FindStringSubmatch(line); m != nil {
		severity = m[1]
		if severity == redisSlowlogTag {
			severity = domain.SeverityWarn
		}
	}

	command := UnknownCommand
	if m := redisCommandRe.FindStringSubmatch(line); m != nil {
		command = m[1]
	}

	ms, _ := redisMillis(line)

	return domain.UnifiedLogRecord{
		Timestamp: ts.Format(RecordTimeLayout),
		Severity:  severity,
		Operation: command,
		Status:    statusFor(severity),
		LatencyMs: ms,
	}, nil
}
