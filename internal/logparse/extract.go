package logparse

import (
	"regexp"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
)

// Extractor reads the time and duration embedded in a raw line of one source.
type Extractor struct {
	time     func(string) (time.Time, bool)
	duration func(string) (float64, bool)
}

// Time returns the line's timestamp in UTC.
func (e Extractor) Time(line string) (time.Time, bool) {
	return e.time(line)
}

// DurationSeconds returns the line's embedded duration in seconds.
func (e Extractor) DurationSeconds(line string) (float64, bool) {
	return e.duration(line)
}

var genericDurationRe = regexp.MustCompile(`duration=([\d.]+)(ms|s)\b`)

func genericSeconds(line string) (float64, bool) {
	m := genericDurationRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	v := parseNonNegative(m[1])
	if m[2] == "ms" {
		v /= 1000
	}
	return v, true
}

// ExtractorFor returns the extractor of source. Unknown sources read a
// leading timestamp and a duration=<n>s or duration=<n>ms token.
func ExtractorFor(source domain.Source) Extractor {
	switch source {
	case domain.SourceNginx:
		return Extractor{time: nginxTime, duration: nginxResponseSeconds}
	case domain.SourceMySQL:
		return Extractor{time: leadingTime, duration: mysqlSeconds}
	case domain.SourceRedis:
		return Extractor{
			time: leadingTime,
			duration: func(line string) (float64, bool) {
				ms, ok := redisMillis(line)
				return ms / 1000, ok
			},
		}
	}
	return Extractor{time: leadingTime, duration: genericSeconds}
}
