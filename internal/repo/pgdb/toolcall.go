package pgdb

import (
	"context"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/repo/repoerrs"
	"github.com/Egor213/LogiProbe/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	"github.com/Egor213/LogiProbe/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
)

type ToolCallRepo struct {
	*postgres.Postgres
}

func NewToolCallRepo(pg *postgres.Postgres) *ToolCallRepo {
	return &ToolCallRepo{pg}
}

// SaveCall inserts call inside the context's transaction, opening one when
// the caller has none.
func (r *ToolCallRepo) SaveCall(ctx context.Context, call *domain.ToolCall) error {
	args := call.Arguments
	if len(args) == 0 {
		args = []byte("{}")
	}

	sql, sqlArgs, err := r.Builder.
		Insert("tool_calls").
		Columns("id", "tool", "arguments", "status", "result_count", "duration_ms", "created_at").
		Values(call.ID, call.Tool, []byte(args), call.Status, call.ResultCount, call.Duration.Milliseconds(), call.CreatedAt).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return r.TrManager.Do(ctx, func(ctx context.Context) error {
		if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, sqlArgs...); err != nil {
			if errorsUtils.IsUniqueViolation(err) {
				return errorsUtils.WrapPathErr(repoerrs.ErrAlreadyExists)
			}
			return errorsUtils.WrapPathErr(err)
		}
		return nil
	})
}

func (r *ToolCallRepo) GetCalls(ctx context.Context, filter repotypes.CallFilter) ([]domain.ToolCall, error) {
	conds, limit := BuildCallQueryFilters(filter)

	query := r.Builder.
		Select("id::text", "tool", "arguments", "status", "result_count", "duration_ms", "created_at").
		From("tool_calls").
		OrderBy("created_at DESC").
		Limit(limit)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	calls := []domain.ToolCall{}
	for rows.Next() {
		var (
			c          domain.ToolCall
			durationMs int64
		)
		if err := rows.Scan(&c.ID, &c.Tool, &c.Arguments, &c.Status, &c.ResultCount, &durationMs, &c.CreatedAt); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		c.Duration = time.Duration(durationMs) * time.Millisecond
		calls = append(calls, c)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return calls, nil
}

func (r *ToolCallRepo) GetStatsByTool(ctx context.Context, tool string, from, to time.Time) (domain.ToolStats, error) {
	conds := BuildToolStatsQueryFilters(tool, from, to)
	query := r.Builder.
		Select("status", "COUNT(*) AS count_calls").
		From("tool_calls")

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	query = query.GroupBy("status").OrderBy("status")

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.ToolStats{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.ToolStats{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	stats := domain.ToolStats{Tool: tool}

	for rows.Next() {
		var ss domain.StatusStats
		if err := rows.Scan(&ss.Status, &ss.Count); err != nil {
			return domain.ToolStats{}, errorsUtils.WrapPathErr(err)
		}
		stats.CallsByStatus = append(stats.CallsByStatus, ss)
		stats.TotalCalls += ss.Count
	}

	if err := rows.Err(); err != nil {
		return domain.ToolStats{}, errorsUtils.WrapPathErr(err)
	}

	return stats, nil
}

// NopJournal is used when no database is configured.
type NopJournal struct{}

func (NopJournal) SaveCall(context.Context, *domain.ToolCall) error { return nil }

func (NopJournal) GetCalls(context.Context, repotypes.CallFilter) ([]domain.ToolCall, error) {
	return []domain.ToolCall{}, nil
}

func (NopJournal) GetStatsByTool(_ context.Context, tool string, _, _ time.Time) (domain.ToolStats, error) {
	return domain.ToolStats{Tool: tool}, nil
}
