package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/metrics"
	repository_mock "github.com/Egor213/LogiProbe/internal/mocks/repository"
	"github.com/Egor213/LogiProbe/internal/repo"
	"github.com/Egor213/LogiProbe/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func nginxLines(n int) []domain.RawLogLine {
	out := make([]domain.RawLogLine, n)
	for i := range n {
		out[i] = fmt.Sprintf(`192.168.1.%d - - [01/Mar/2026:11:%02d:00 +0000] "GET /api/v1/users HTTP/1.1" 200 100 "-" "ua" 0.100`, i+1, i)
	}
	return out
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestLogService_Query(t *testing.T) {
	type mockBehavior func(nginx, mysql, redis *repository_mock.MockLogSource)

	mysqlLines := []domain.RawLogLine{
		`2026-03-01 11:00:00 [INFO] [Query] duration=0.05s sql="SELECT 1;"`,
		`2026-03-01 11:01:00 [WARN] [SlowQuery] duration=4.5s sql="SELECT * FROM payments;"`,
		`corrupted`,
	}

	testCases := []struct {
		name         string
		source       domain.Source
		query        domain.LogQuery
		mockBehavior mockBehavior
		wantOps      []string
		wantCursor   bool
		wantMatched  int
		wantSkipped  int
		wantErr      error
	}{
		{
			name:   "nginx default limit is 10",
			source: domain.SourceNginx,
			query:  domain.LogQuery{ServerIP: "10.0.2.101", WindowMinutes: 60},
			mockBehavior: func(nginx, _, _ *repository_mock.MockLogSource) {
				nginx.EXPECT().Generate("10.0.2.101", 60).Return(nginxLines(12))
			},
			wantOps:     repeat("GET /api/v1/users", 10),
			wantCursor:  true,
			wantMatched: 12,
		},
		{
			name:   "mysql keywords keep unparsable line then skip it",
			source: domain.SourceMySQL,
			query:  domain.LogQuery{ServerIP: "10.0.3.101", Keywords: []string{"select", "corrupted"}},
			mockBehavior: func(_, mysql, _ *repository_mock.MockLogSource) {
				mysql.EXPECT().Generate("10.0.3.101", 0).Return(mysqlLines)
			},
			wantOps:     []string{"SELECT 1;", "SELECT * FROM payments;"},
			wantMatched: 3,
			wantSkipped: 1,
		},
		{
			name:   "caller limit overrides default",
			source: domain.SourceRedis,
			query:  domain.LogQuery{ServerIP: "10.0.1.101", Limit: 1},
			mockBehavior: func(_, _, redis *repository_mock.MockLogSource) {
				redis.EXPECT().Generate("10.0.1.101", 0).Return([]domain.RawLogLine{
					`2026-03-01 11:00:00 [INFO] command="GET user:1"`,
					`2026-03-01 11:00:30 [SLOWLOG] duration=120ms command="SET user:3 1"`,
				})
			},
			wantOps:     []string{"GET user:1"},
			wantCursor:  true,
			wantMatched: 2,
		},
		{
			name:         "unknown source",
			source:       "kafka",
			query:        domain.LogQuery{ServerIP: "10.0.1.101"},
			mockBehavior: func(_, _, _ *repository_mock.MockLogSource) {},
			wantErr:      service.ErrUnknownSource,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			nginx := repository_mock.NewMockLogSource(ctrl)
			mysql := repository_mock.NewMockLogSource(ctrl)
			redis := repository_mock.NewMockLogSource(ctrl)
			tc.mockBehavior(nginx, mysql, redis)

			repos := &repo.Repositories{Nginx: nginx, MySQL: mysql, Redis: redis}
			s := service.NewLogService(repos, metrics.NewTestCounters(), service.LogLimits{})

			page, err := s.Query(context.Background(), tc.source, tc.query)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			ops := make([]string, len(page.Records))
			for i, r := range page.Records {
				ops[i] = r.Operation
				assert.Equal(t, tc.source, r.Source)
				assert.Equal(t, tc.query.ServerIP, r.ServerIP)
			}
			assert.Equal(t, tc.wantOps, ops)
			assert.Equal(t, tc.wantCursor, page.NextCursor != nil)
			assert.Equal(t, tc.wantMatched, page.Matched)
			assert.Equal(t, tc.wantSkipped, page.Skipped)
		})
	}
}

func TestLogService_QueryCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{Nginx: repository_mock.NewMockLogSource(ctrl)}
	s := service.NewLogService(repos, metrics.NewTestCounters(), service.DefaultLogLimits())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Query(ctx, domain.SourceNginx, domain.LogQuery{ServerIP: "10.0.2.101"})
	assert.True(t, errors.Is(err, context.Canceled))
}
