package pgdb

import (
	"time"

	"github.com/Egor213/LogiProbe/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

const (
	defaultCallsLimit = 100
	maxCallsLimit     = 1000
)

func BuildCallQueryFilters(filter repotypes.CallFilter) ([]sq.Sqlizer, uint64) {
	conds := BuildToolStatsQueryFilters(filter.Tool, filter.From, filter.To)

	if filter.Status != "" {
		conds = append(conds, sq.Eq{"status": filter.Status})
	}

	limit := uint64(defaultCallsLimit)
	if filter.Limit > 0 {
		limit = uint64(min(filter.Limit, maxCallsLimit))
	}

	return conds, limit
}

func BuildToolStatsQueryFilters(tool string, from, to time.Time) []sq.Sqlizer {
	conds := []sq.Sqlizer{}
	if tool != "" {
		conds = append(conds, sq.Eq{"tool": tool})
	}
	if isSet(from) {
		conds = append(conds, sq.GtOrEq{"created_at": from})
	}
	if isSet(to) {
		conds = append(conds, sq.LtOrEq{"created_at": to})
	}
	return conds
}

func isSet(t time.Time) bool {
	return !t.IsZero() && !t.Equal(time.Unix(0, 0))
}
