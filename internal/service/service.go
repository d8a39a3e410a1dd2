package service

import (
	"context"
	"time"

	"github.com/Egor213/LogiProbe/internal/broker"
	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/metrics"
	"github.com/Egor213/LogiProbe/internal/repo"
	"github.com/Egor213/LogiProbe/internal/repo/repotypes"
)

type Servers interface {
	ListServers(ctx context.Context) []domain.ServerDescriptor
}

type Logs interface {
	Query(ctx context.Context, source domain.Source, q domain.LogQuery) (domain.LogPage, error)
}

type Metrics interface {
	Snapshot(ctx context.Context, serverIP string, windowMinutes int) domain.MetricSnapshot
	Metric(ctx context.Context, serverIP, name string) (map[string]float64, error)
	Names() []string
}

type Diagnosis interface {
	Diagnose(ctx context.Context, serverIP, action string) (domain.DiagnosisReport, error)
	Actions() []string
}

type Journal interface {
	Record(ctx context.Context, call domain.ToolCall)
	Calls(ctx context.Context, filter repotypes.CallFilter) ([]domain.ToolCall, error)
	Stats(ctx context.Context, tool string, from, to time.Time) (domain.ToolStats, error)
}

type Services struct {
	Servers
	Logs
	Metrics
	Diagnosis
	Journal
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	Limits         LogLimits
	WindowMinutes  int
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Servers:   NewServerService(deps.Repos.Servers),
		Logs:      NewLogService(deps.Repos, deps.Counters, deps.Limits),
		Metrics:   NewMetricService(deps.Repos.Metrics, deps.WindowMinutes),
		Diagnosis: NewDiagnosisService(deps.Repos.Diagnostics),
		Journal:   NewJournalService(deps.Repos.Journal, deps.BrokerProducer),
	}
}
