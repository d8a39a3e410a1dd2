package httpv1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Egor213/LogiProbe/internal/repo/repotypes"
	"github.com/Egor213/LogiProbe/internal/service"
	"github.com/labstack/echo/v4"
)

const defaultStatsRange = 24 * time.Hour

type journalRoutes struct {
	journal service.Journal
}

func (r *journalRoutes) calls(c echo.Context) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return badRequest(c, err.Error())
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := repotypes.CallFilter{
		Tool:   c.QueryParam("tool"),
		Status: c.QueryParam("status"),
		From:   from,
		To:     to,
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return badRequest(c, "limit must be a positive integer")
		}
		filter.Limit = n
	}

	calls, err := r.journal.Calls(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: service.ErrCannotGetCalls.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"calls": calls})
}

func (r *journalRoutes) stats(c echo.Context) error {
	tool := c.QueryParam("tool")
	if tool == "" {
		return badRequest(c, "tool is required")
	}

	from, err := queryTime(c, "from")
	if err != nil {
		return badRequest(c, err.Error())
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-defaultStatsRange)
	}

	stats, err := r.journal.Stats(c.Request().Context(), tool, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: service.ErrCannotGetStats.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}

func queryTime(c echo.Context, key string) (time.Time, error) {
	v := c.QueryParam(key)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC3339 time", key)
	}
	return t.UTC(), nil
}
