package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Egor213/LogiProbe/internal/broker"
	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/repo"
	"github.com/Egor213/LogiProbe/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type callEvent struct {
	ID          string          `json:"id"`
	Tool        string          `json:"tool"`
	Arguments   json.RawMessage `json:"arguments,omitempty"`
	Status      string          `json:"status"`
	ResultCount int             `json:"result_count"`
	DurationMs  int64           `json:"duration_ms"`
	CreatedAt   time.Time       `json:"created_at"`
}

type JournalService struct {
	journal        repo.Journal
	brokerProducer broker.Producer
}

func NewJournalService(j repo.Journal, p broker.Producer) *JournalService {
	if p == nil {
		p = broker.NopProducer{}
	}
	return &JournalService{
		journal:        j,
		brokerProducer: p,
	}
}

// Record stores and publishes call. Failures are logged and never returned.
func (s *JournalService) Record(ctx context.Context, call domain.ToolCall) {
	logger := log.WithFields(log.Fields{
		"id":   call.ID,
		"tool": call.Tool,
	})

	if err := s.journal.SaveCall(ctx, &call); err != nil {
		logger.WithError(err).Warn("Failed to save tool call")
	}

	args := call.Arguments
	if !json.Valid(args) {
		args = nil
	}
	payload, err := json.Marshal(callEvent{
		ID:          call.ID,
		Tool:        call.Tool,
		Arguments:   args,
		Status:      call.Status,
		ResultCount: call.ResultCount,
		DurationMs:  call.Duration.Milliseconds(),
		CreatedAt:   call.CreatedAt,
	})
	if err != nil {
		logger.WithError(err).Warn("Failed to encode tool call event")
		return
	}

	if err := s.brokerProducer.SendMessage(ctx, []byte(call.Tool), payload); err != nil {
		logger.WithError(err).Warn("Failed to publish tool call event")
	}
}

func (s *JournalService) Calls(ctx context.Context, filter repotypes.CallFilter) ([]domain.ToolCall, error) {
	calls, err := s.journal.GetCalls(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to read tool calls")
		return nil, errorsUtils.WrapPathErr(ErrCannotGetCalls)
	}
	return calls, nil
}

func (s *JournalService) Stats(ctx context.Context, tool string, from, to time.Time) (domain.ToolStats, error) {
	stats, err := s.journal.GetStatsByTool(ctx, tool, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to read tool stats")
		return domain.ToolStats{}, errorsUtils.WrapPathErr(ErrCannotGetStats)
	}
	return stats, nil
}
