package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/Egor213/LogiProbe/internal/codesearch"
	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/service"
)

type handlers struct {
	svc  *service.Services
	code *codesearch.Searcher
}

func (h *handlers) nginxServers(ctx context.Context, _ Args) (any, error) {
	return h.svc.ListServers(ctx), nil
}

func (h *handlers) serverLogs(ctx context.Context, args Args) (any, error) {
	q, err := logQuery(args, "min_duration_s")
	if err != nil {
		return nil, err
	}
	if q.Endpoint, err = args.String("api_endpoint"); err != nil {
		return nil, err
	}
	return h.svc.Query(ctx, domain.SourceNginx, q)
}

func (h *handlers) mysqlLogs(ctx context.Context, args Args) (any, error) {
	q, err := logQuery(args, "min_duration_s")
	if err != nil {
		return nil, err
	}
	return h.svc.Query(ctx, domain.SourceMySQL, q)
}

func (h *handlers) redisLogs(ctx context.Context, args Args) (any, error) {
	q, err := logQuery(args, args.First("min_duration", "min_duration_s"))
	if err != nil {
		return nil, err
	}
	return h.svc.Query(ctx, domain.SourceRedis, q)
}

func logQuery(args Args, durationKey string) (domain.LogQuery, error) {
	var (
		q   domain.LogQuery
		err error
	)
	if q.ServerIP, err = args.RequiredString("server_ip"); err != nil {
		return q, err
	}
	kw, err := args.Keywords("keywords")
	if err != nil {
		return q, err
	}
	q.Keywords = kw
	if q.MinDurationS, err = args.Float(durationKey, 0); err != nil {
		return q, err
	}
	if q.StartTime, err = args.String("start_time"); err != nil {
		return q, err
	}
	if q.EndTime, err = args.String("end_time"); err != nil {
		return q, err
	}
	if q.Limit, err = args.Int("limit", 0); err != nil {
		return q, err
	}
	if q.WindowMinutes, err = args.Int("window_minutes", 0); err != nil {
		return q, err
	}
	return q, nil
}

func (h *handlers) serverMetrics(ctx context.Context, args Args) (any, error) {
	ip, err := args.RequiredString("server_ip")
	if err != nil {
		return nil, err
	}
	name, err := args.String("metric_name")
	if err != nil {
		return nil, err
	}

	if name == "" {
		w, err := args.Int("window_minutes", 0)
		if err != nil {
			return nil, err
		}
		return h.svc.Snapshot(ctx, ip, w), nil
	}

	m, err := h.svc.Metric(ctx, ip, name)
	if errors.Is(err, service.ErrUnknownMetric) {
		return nil, &Error{
			Message:   fmt.Sprintf("unknown metric %q", name),
			Available: h.svc.Names(),
			Err:       err,
		}
	}
	return m, err
}

func (h *handlers) mysqlDiagnosis(ctx context.Context, args Args) (any, error) {
	ip, err := args.RequiredString("server_ip")
	if err != nil {
		return nil, err
	}
	action, err := args.String("action")
	if err != nil {
		return nil, err
	}

	report, err := h.svc.Diagnose(ctx, ip, action)
	if errors.Is(err, service.ErrUnknownAction) {
		return nil, &Error{
			Message:   fmt.Sprintf("unsupported diagnosis action %q", action),
			Available: h.svc.Actions(),
			Err:       err,
		}
	}
	return report, err
}

func (h *handlers) searchCode(_ context.Context, args Args) (any, error) {
	pattern, err := args.String("file_pattern")
	if err != nil {
		return nil, err
	}
	keyword, err := args.String("keyword")
	if err != nil {
		return nil, err
	}
	path, err := args.String("file_path")
	if err != nil {
		return nil, err
	}
	return h.code.Search(pattern, keyword, path)
}

func (h *handlers) codeContext(_ context.Context, args Args) (any, error) {
	path, err := args.RequiredString("file_path")
	if err != nil {
		return nil, err
	}
	start, err := args.Int("line_start", codesearch.DefaultContextStart)
	if err != nil {
		return nil, err
	}
	end, err := args.Int("line_end", codesearch.DefaultContextEnd)
	if err != nil {
		return nil, err
	}
	highlight, err := args.Ints("highlight_lines")
	if err != nil {
		return nil, err
	}
	return h.code.Context(path, start, end, highlight)
}

func (h *handlers) analyzeCode(_ context.Context, args Args) (any, error) {
	snippet, err := args.String("code_snippet")
	if err != nil {
		return nil, err
	}
	issue, err := args.String("issue_type")
	if err != nil {
		return nil, err
	}

	res, err := codesearch.Analyze(snippet, issue)
	if errors.Is(err, codesearch.ErrUnknownIssue) {
		return nil, &Error{
			Message:   fmt.Sprintf("unknown issue type %q", issue),
			Available: codesearch.IssueTypes(),
			Err:       err,
		}
	}
	return res, err
}
