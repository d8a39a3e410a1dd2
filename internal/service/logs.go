package service

import (
	"context"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/logfilter"
	"github.com/Egor213/LogiProbe/internal/logparse"
	"github.com/Egor213/LogiProbe/internal/metrics"
	"github.com/Egor213/LogiProbe/internal/repo"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LogLimits caps a page per source when the caller sets no limit.
type LogLimits struct {
	Nginx int
	MySQL int
	Redis int
}

func DefaultLogLimits() LogLimits {
	return LogLimits{Nginx: 10, MySQL: 1000, Redis: 15}
}

type sourceEntry struct {
	source repo.LogSource
	limit  int
}

type LogService struct {
	sources    map[domain.Source]sourceEntry
	normalizer *logparse.Normalizer
	counters   *metrics.Counters
}

func NewLogService(repos *repo.Repositories, cnt *metrics.Counters, limits LogLimits) *LogService {
	def := DefaultLogLimits()
	pickLimit := func(v, fallback int) int {
		if v > 0 {
			return v
		}
		return fallback
	}

	return &LogService{
		sources: map[domain.Source]sourceEntry{
			domain.SourceNginx: {source: repos.Nginx, limit: pickLimit(limits.Nginx, def.Nginx)},
			domain.SourceMySQL: {source: repos.MySQL, limit: pickLimit(limits.MySQL, def.MySQL)},
			domain.SourceRedis: {source: repos.Redis, limit: pickLimit(limits.Redis, def.Redis)},
		},
		normalizer: logparse.NewNormalizer(cnt.ParseFailures),
		counters:   cnt,
	}
}

// Query runs generate, filter, then normalize for one source.
func (s *LogService) Query(ctx context.Context, source domain.Source, q domain.LogQuery) (domain.LogPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.LogPage{}, errorsUtils.WrapPathErr(err)
	}

	entry, ok := s.sources[source]
	if !ok || entry.source == nil {
		return domain.LogPage{}, errorsUtils.WrapPathErr(ErrUnknownSource)
	}

	lines := entry.source.Generate(q.ServerIP, q.WindowMinutes)
	s.counters.LinesGenerated.Add(float64(len(lines)), string(source))

	keywords, _ := logfilter.ParseKeywords(q.Keywords)
	opts := logfilter.Options{
		Endpoint:     q.Endpoint,
		Keywords:     keywords,
		MinDurationS: q.MinDurationS,
		StartTime:    q.StartTime,
		EndTime:      q.EndTime,
		Limit:        entry.limit,
	}
	if q.Limit > 0 {
		opts.Limit = q.Limit
	}

	res := logfilter.Apply(lines, opts, logparse.ExtractorFor(source))
	records, skipped := s.normalizer.NormalizeBatch(res.Lines, source, q.ServerIP)

	log.WithFields(log.Fields{
		"source":    source,
		"server_ip": q.ServerIP,
		"generated": len(lines),
		"matched":   res.Matched,
		"returned":  len(records),
	}).Debug("Log query served")

	return domain.LogPage{
		Records:    records,
		NextCursor: res.NextCursor,
		Matched:    res.Matched,
		Skipped:    skipped,
	}, nil
}
