package httpv1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpv1 "github.com/Egor213/LogiProbe/internal/controller/http/v1"
	"github.com/Egor213/LogiProbe/internal/domain"
	servicemocks "github.com/Egor213/LogiProbe/internal/mocks/service"
	"github.com/Egor213/LogiProbe/internal/repo/repotypes"
	"github.com/Egor213/LogiProbe/internal/service"
	"github.com/Egor213/LogiProbe/internal/tools"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDispatcher struct {
	catalog  *tools.Catalog
	gotName  string
	gotArgs  map[string]any
	response any
}

func (f *fakeDispatcher) Call(_ context.Context, name string, args map[string]any) any {
	f.gotName, f.gotArgs = name, args
	return f.response
}

func (f *fakeDispatcher) Known(name string) bool {
	_, ok := f.catalog.Lookup(name)
	return ok
}

func (f *fakeDispatcher) Catalog() *tools.Catalog {
	return f.catalog
}

func newTestRouter(t *testing.T, d *fakeDispatcher, j service.Journal) *echo.Echo {
	t.Helper()
	e := echo.New()
	httpv1.ConfigureRouter(e, httpv1.AppInfo{Name: "logiprobe", Version: "test"}, d, j)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestToolRoutes(t *testing.T) {
	d := &fakeDispatcher{catalog: tools.NewCatalog(&service.Services{}, nil)}
	e := newTestRouter(t, d, nil)

	t.Run("index", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Name  string   `json:"name"`
			Tools []string `json:"tools"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "logiprobe", body.Name)
		assert.Contains(t, body.Tools, tools.ToolMySQLLogs)
	})

	t.Run("health", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("list carries schemas", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/tools/list", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Tools []struct {
				Name        string         `json:"name"`
				InputSchema map[string]any `json:"inputSchema"`
			} `json:"tools"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Tools, 6)
		assert.Equal(t, "object", body.Tools[1].InputSchema["type"])
	})

	t.Run("call wraps result", func(t *testing.T) {
		d.response = map[string]float64{"cpu_percent": 91}
		rec := serve(e, http.MethodPost, "/tools/call",
			`{"tool_name":"get_server_metrics","arguments":{"server_ip":"10.0.2.101","metric_name":"cpu"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"result":{"cpu_percent":91}}`, rec.Body.String())
		assert.Equal(t, "get_server_metrics", d.gotName)
		assert.Equal(t, "cpu", d.gotArgs["metric_name"])
	})

	t.Run("error value is still 200", func(t *testing.T) {
		d.response = tools.ErrorResult{Error: `unknown metric "x"`, Available: []string{"cpu_percent"}}
		rec := serve(e, http.MethodPost, "/tools/call", `{"tool_name":"get_server_metrics","arguments":{}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"result":{"error":"unknown metric \"x\"","available":["cpu_percent"]}}`, rec.Body.String())
	})

	t.Run("unknown tool is 404", func(t *testing.T) {
		d.response = tools.ErrorResult{Error: `unknown tool "nope"`, Available: []string{"get_nginx_servers"}}
		rec := serve(e, http.MethodPost, "/tools/call", `{"tool_name":"nope"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"unknown tool \"nope\"","available":["get_nginx_servers"]}`, rec.Body.String())
	})

	t.Run("bad body", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/tools/call", `{"tool_name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = serve(e, http.MethodPost, "/tools/call", `{"arguments":{}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"tool_name is required"}`, rec.Body.String())
	})
}

func TestJournalRoutes(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		target   string
		setup    func(j *servicemocks.MockJournal)
		wantCode int
		wantBody string
	}{
		{
			name:   "calls with filter",
			target: "/journal/calls?tool=get_redis_logs&status=ok&from=2026-03-01T00:00:00Z&limit=2",
			setup: func(j *servicemocks.MockJournal) {
				j.EXPECT().Calls(gomock.Any(), repotypes.CallFilter{
					Tool:   "get_redis_logs",
					Status: "ok",
					From:   from,
					Limit:  2,
				}).Return([]domain.ToolCall{}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"calls":[]}`,
		},
		{
			name:     "calls bad limit",
			target:   "/journal/calls?limit=-1",
			setup:    func(*servicemocks.MockJournal) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "calls bad time",
			target:   "/journal/calls?to=yesterday",
			setup:    func(*servicemocks.MockJournal) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"to must be an RFC3339 time"}`,
		},
		{
			name:   "calls store failure",
			target: "/journal/calls",
			setup: func(j *servicemocks.MockJournal) {
				j.EXPECT().Calls(gomock.Any(), gomock.Any()).Return(nil, service.ErrCannotGetCalls)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "stats",
			target: "/journal/stats?tool=get_mysql_logs&from=2026-03-01T00:00:00Z&to=2026-03-02T00:00:00Z",
			setup: func(j *servicemocks.MockJournal) {
				j.EXPECT().Stats(gomock.Any(), "get_mysql_logs", from, to).
					Return(domain.ToolStats{Tool: "get_mysql_logs", TotalCalls: 3}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"tool":"get_mysql_logs","total_calls":3,"calls_by_status":null}`,
		},
		{
			name:   "stats default range",
			target: "/journal/stats?tool=get_mysql_logs",
			setup: func(j *servicemocks.MockJournal) {
				j.EXPECT().Stats(gomock.Any(), "get_mysql_logs", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, f, tt time.Time) (domain.ToolStats, error) {
						assert.Equal(t, 24*time.Hour, tt.Sub(f))
						return domain.ToolStats{}, errors.New("db down")
					})
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "stats without tool",
			target:   "/journal/stats",
			setup:    func(*servicemocks.MockJournal) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			j := servicemocks.NewMockJournal(ctrl)
			tc.setup(j)

			e := newTestRouter(t, &fakeDispatcher{catalog: tools.NewCatalog(&service.Services{}, nil)}, j)
			rec := serve(e, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
