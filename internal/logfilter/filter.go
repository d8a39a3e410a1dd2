// Package logfilter narrows raw log lines before they are normalized and
// paginates the result with a timestamp cursor.
package logfilter

import (
	"sort"
	"strings"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Extractor reads source-specific fields from a raw line.
type Extractor interface {
	Time(line string) (time.Time, bool)
	DurationSeconds(line string) (float64, bool)
}

type Options struct {
	// Endpoint is matched case-sensitively against the raw line.
	Endpoint     string
	Keywords     Keywords
	MinDurationS float64
	// StartTime is exclusive and EndTime inclusive, so a previous NextCursor
	// can be passed back as StartTime.
	StartTime string
	EndTime   string
	Limit     int
}

type Result struct {
	Lines      []domain.RawLogLine
	NextCursor *string
	// Matched counts lines that passed every filter before Limit was applied.
	Matched int
}

type timedLine struct {
	line string
	at   time.Time
	ok   bool
}

// Apply filters lines and returns them ordered by time, lines without a
// readable time first.
func Apply(lines []domain.RawLogLine, opts Options, ex Extractor) Result {
	start, hasStart := parseBound("start_time", opts.StartTime)
	end, hasEnd := parseBound("end_time", opts.EndTime)
	bounded := hasStart || hasEnd

	kept := make([]timedLine, 0, len(lines))
	for _, line := range lines {
		if opts.Endpoint != "" && !strings.Contains(line, opts.Endpoint) {
			continue
		}
		if !opts.Keywords.Match(line) {
			continue
		}
		if opts.MinDurationS > 0 {
			d, ok := ex.DurationSeconds(line)
			if !ok || d < opts.MinDurationS {
				continue
			}
		}

		at, ok := ex.Time(line)
		if bounded {
			if !ok {
				continue
			}
			if hasStart && !at.After(start) {
				continue
			}
			if hasEnd && at.After(end) {
				continue
			}
		}
		kept = append(kept, timedLine{line: line, at: at, ok: ok})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.ok != b.ok {
			return !a.ok
		}
		return a.at.Before(b.at)
	})

	res := Result{Matched: len(kept)}
	page := kept
	if opts.Limit > 0 && len(page) > opts.Limit {
		page = page[:opts.Limit]
	}

	res.Lines = make([]domain.RawLogLine, len(page))
	for i, tl := range page {
		res.Lines[i] = tl.line
	}

	if opts.Limit > 0 && len(page) == opts.Limit {
		if at, ok := cursorTime(kept, len(page)); ok {
			cursor := at.Format(CursorLayout)
			res.NextCursor = &cursor
		}
	}
	return res
}

// cursorTime picks the resume point of a full page of n lines. Untimed lines
// sort first, so an untimed last line means the page holds only untimed
// lines. The cursor then points one second before the first timed line left
// over. It reports false when no timed line exists at all.
func cursorTime(kept []timedLine, n int) (time.Time, bool) {
	if last := kept[n-1]; last.ok {
		return last.at, true
	}
	for _, tl := range kept[n:] {
		if tl.ok {
			return tl.at.Truncate(time.Second).Add(-time.Second), true
		}
	}
	return time.Time{}, false
}

func parseBound(name, value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, false
	}
	t, ok := ParseBound(value)
	if !ok {
		log.WithFields(log.Fields{
			"bound": name,
			"value": value,
		}).Warn("Ignoring unparsable time bound")
	}
	return t, ok
}
