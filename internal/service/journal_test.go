package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
	broker_mock "github.com/Egor213/LogiProbe/internal/mocks/broker"
	repository_mock "github.com/Egor213/LogiProbe/internal/mocks/repository"
	"github.com/Egor213/LogiProbe/internal/repo/repotypes"
	"github.com/Egor213/LogiProbe/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJournalService_Record(t *testing.T) {
	call := domain.ToolCall{
		ID:          "6f1c2c1e-7c62-4a57-9d44-0b2a3d5f6e70",
		Tool:        "get_mysql_logs",
		Arguments:   []byte(`{"server_ip":"10.0.3.101"}`),
		Status:      domain.CallStatusOK,
		ResultCount: 3,
		Duration:    12 * time.Millisecond,
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name    string
		saveErr error
		sendErr error
	}{
		{name: "success"},
		{name: "save failure still publishes", saveErr: errors.New("db down")},
		{name: "publish failure is swallowed", sendErr: errors.New("broker down")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			j := repository_mock.NewMockJournal(ctrl)
			p := broker_mock.NewMockProducer(ctrl)

			j.EXPECT().SaveCall(ctx, &call).Return(tc.saveErr)
			p.EXPECT().SendMessage(ctx, []byte("get_mysql_logs"), gomock.Any()).
				DoAndReturn(func(_ context.Context, _, value []byte) error {
					var event map[string]any
					require.NoError(t, json.Unmarshal(value, &event))
					assert.Equal(t, call.ID, event["id"])
					assert.Equal(t, float64(12), event["duration_ms"])
					assert.Equal(t, "10.0.3.101", event["arguments"].(map[string]any)["server_ip"])
					return tc.sendErr
				})

			assert.NotPanics(t, func() {
				service.NewJournalService(j, p).Record(ctx, call)
			})
		})
	}
}

func TestJournalService_Calls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	j := repository_mock.NewMockJournal(ctrl)
	svc := service.NewJournalService(j, nil)

	filter := repotypes.CallFilter{Tool: "get_redis_logs", Limit: 5}
	want := []domain.ToolCall{{ID: "a", Tool: "get_redis_logs"}}

	j.EXPECT().GetCalls(ctx, filter).Return(want, nil)
	got, err := svc.Calls(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	j.EXPECT().GetCalls(ctx, filter).Return(nil, errors.New("db error"))
	_, err = svc.Calls(ctx, filter)
	assert.ErrorIs(t, err, service.ErrCannotGetCalls)
}

func TestJournalService_Stats(t *testing.T) {
	type mockBehavior func(j *repository_mock.MockJournal, from, to time.Time)

	now := time.Now()
	testCases := []struct {
		name         string
		mockBehavior mockBehavior
		want         domain.ToolStats
		wantErr      bool
	}{
		{
			name: "success",
			mockBehavior: func(j *repository_mock.MockJournal, from, to time.Time) {
				j.EXPECT().GetStatsByTool(gomock.Any(), "get_server_metrics", from, to).
					Return(domain.ToolStats{
						Tool:       "get_server_metrics",
						TotalCalls: 10,
						CallsByStatus: []domain.StatusStats{
							{Status: "error", Count: 2},
							{Status: "ok", Count: 8},
						},
					}, nil)
			},
			want: domain.ToolStats{
				Tool:       "get_server_metrics",
				TotalCalls: 10,
				CallsByStatus: []domain.StatusStats{
					{Status: "error", Count: 2},
					{Status: "ok", Count: 8},
				},
			},
		},
		{
			name: "repository error",
			mockBehavior: func(j *repository_mock.MockJournal, from, to time.Time) {
				j.EXPECT().GetStatsByTool(gomock.Any(), "get_server_metrics", from, to).
					Return(domain.ToolStats{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			from, to := now.Add(-time.Hour), now
			j := repository_mock.NewMockJournal(ctrl)
			tc.mockBehavior(j, from, to)

			got, err := service.NewJournalService(j, nil).Stats(context.Background(), "get_server_metrics", from, to)
			if tc.wantErr {
				assert.ErrorIs(t, err, service.ErrCannotGetStats)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
