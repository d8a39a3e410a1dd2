package logfilter_test

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/logfilter"
	"github.com/Egor213/LogiProbe/internal/logparse"
	"github.com/Egor213/LogiProbe/internal/repo/synth"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func generator(seed uint64) *synth.Generator {
	return synth.New(
		synth.WithRand(rand.New(rand.NewPCG(seed, 42))),
		synth.WithClock(func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }),
	)
}

func TestApply_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("keyword filter returns a subset containing a keyword", prop.ForAll(
		func(seed uint64, kws []string) bool {
			lines := synth.NewRedisLogs(generator(seed)).Generate(synth.DegradedIP, 60)
			res := logfilter.Apply(lines, logfilter.Options{Keywords: kws}, logparse.ExtractorFor(domain.SourceRedis))

			input := make(map[string]int, len(lines))
			for _, l := range lines {
				input[l]++
			}
			for _, l := range res.Lines {
				if input[l] == 0 {
					return false
				}
				input[l]--
				if len(kws) == 0 {
					continue
				}
				hit := false
				for _, k := range kws {
					hit = hit || strings.Contains(strings.ToLower(l), strings.ToLower(k))
				}
				if !hit {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.SliceOf(gen.OneConstOf("ERROR", "get", "user:1", "SLOWLOG", "timeout", "zzz")),
	))

	properties.Property("chained pages never repeat a timestamp", prop.ForAll(
		func(seed uint64, limit int, source domain.Source) bool {
			g := generator(seed)
			var lines []domain.RawLogLine
			switch source {
			case domain.SourceNginx:
				lines = synth.NewNginxLogs(g).Generate(synth.DegradedIP, 60)
			case domain.SourceMySQL:
				lines = synth.NewMySQLLogs(g).Generate(synth.DegradedIP, 60)
			default:
				lines = synth.NewRedisLogs(g).Generate(synth.DegradedIP, 60)
			}
			ex := logparse.ExtractorFor(source)

			first := logfilter.Apply(lines, logfilter.Options{Limit: limit}, ex)
			if (first.NextCursor == nil) != (len(first.Lines) < limit) {
				return false
			}
			if first.NextCursor == nil {
				return true
			}

			second := logfilter.Apply(lines, logfilter.Options{Limit: limit, StartTime: *first.NextCursor}, ex)
			if (second.NextCursor == nil) != (len(second.Lines) < limit) {
				return false
			}

			seen := map[time.Time]bool{}
			for _, l := range first.Lines {
				ts, _ := ex.Time(l)
				seen[ts] = true
			}
			for _, l := range second.Lines {
				ts, _ := ex.Time(l)
				if seen[ts] {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.IntRange(1, 120),
		gen.OneConstOf(domain.SourceNginx, domain.SourceMySQL, domain.SourceRedis),
	))

	properties.TestingRun(t)
}
