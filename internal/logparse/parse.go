// Package logparse turns synthetic raw log lines into domain.UnifiedLogRecord.
//
// The parsers are lenient: only the timestamp is required. Every other field
// falls back to a sentinel when its pattern is missing from the line.
package logparse

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const (
	// RecordTimeLayout is the timestamp format of every normalized record.
	RecordTimeLayout = "2006-01-02 15:04:05"

	UnknownMethod  = "UNKNOWN"
	UnknownPath    = "unknown"
	UnknownStatus  = "000"
	UnknownSQL     = "UNKNOWN SQL"
	UnknownCommand = "UNKNOWN"

	StatusOK    = "OK"
	StatusError = "ERROR"

	FieldTimestamp = "timestamp"
	FieldSource    = "source"
)

type ParseError struct {
	Source domain.Source
	Field  string
	Line   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s line: missing %s: %q", e.Source, e.Field, e.Line)
}

// Parse normalizes one line. It fails only when the line has no usable
// timestamp or the source is unknown.
func Parse(line string, source domain.Source, serverIP string) (domain.UnifiedLogRecord, error) {
	var (
		rec domain.UnifiedLogRecord
		err error
	)
	switch source {
	case domain.SourceNginx:
		rec, err = parseNginx(line)
	case domain.SourceMySQL:
		rec, err = parseMySQL(line)
	case domain.SourceRedis:
		rec, err = parseRedis(line)
	default:
		return domain.UnifiedLogRecord{}, &ParseError{Source: source, Field: FieldSource, Line: line}
	}
	if err != nil {
		return domain.UnifiedLogRecord{}, err
	}

	rec.Source = source
	rec.ServerIP = serverIP
	rec.Raw = line
	return rec, nil
}

type Normalizer struct {
	failures metrics.Counter
}

// NewNormalizer counts skipped lines on failures, which may be nil.
func NewNormalizer(failures metrics.Counter) *Normalizer {
	return &Normalizer{failures: failures}
}

// NormalizeBatch parses every line and skips the ones Parse rejects.
// It returns the records in input order and the number of skipped lines.
func (n *Normalizer) NormalizeBatch(lines []domain.RawLogLine, source domain.Source, serverIP string) ([]domain.UnifiedLogRecord, int) {
	records := make([]domain.UnifiedLogRecord, 0, len(lines))
	skipped := 0

	for _, line := range lines {
		rec, err := Parse(line, source, serverIP)
		if err != nil {
			skipped++
			log.WithFields(log.Fields{
				"source":    source,
				"server_ip": serverIP,
				"error":     err,
			}).Warn("Skipping unparsable log line")
			if n.failures != nil {
				n.failures.Inc(string(source))
			}
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

// parseNonNegative returns 0 for anything that is not a finite number >= 0.
func parseNonNegative(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
