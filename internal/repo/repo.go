package repo

import (
	"context"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/repo/pgdb"
	"github.com/Egor213/LogiProbe/internal/repo/repotypes"
	"github.com/Egor213/LogiProbe/internal/repo/synth"
	"github.com/Egor213/LogiProbe/pkg/postgres"
)

type Servers interface {
	ListServers() []domain.ServerDescriptor
}

type LogSource interface {
	Source() domain.Source
	Generate(serverIP string, windowMinutes int) []domain.RawLogLine
}

type Metrics interface {
	Snapshot(serverIP string, windowMinutes int) domain.MetricSnapshot
}

type Diagnostics interface {
	Actions() []string
	Diagnose(serverIP, action string) (domain.DiagnosisReport, error)
}

type Journal interface {
	SaveCall(ctx context.Context, call *domain.ToolCall) error
	GetCalls(ctx context.Context, filter repotypes.CallFilter) ([]domain.ToolCall, error)
	GetStatsByTool(ctx context.Context, tool string, from, to time.Time) (domain.ToolStats, error)
}

type Repositories struct {
	Servers
	Nginx LogSource
	MySQL LogSource
	Redis LogSource
	Metrics
	Diagnostics
	Journal
}

// NewRepositories builds the synthetic sources. A nil pg leaves the journal
// as a no-op.
func NewRepositories(gen *synth.Generator, pg *postgres.Postgres) *Repositories {
	var journal Journal = pgdb.NopJournal{}
	if pg != nil {
		journal = pgdb.NewToolCallRepo(pg)
	}

	return &Repositories{
		Servers:     synth.NewServerDirectory(),
		Nginx:       synth.NewNginxLogs(gen),
		MySQL:       synth.NewMySQLLogs(gen),
		Redis:       synth.NewRedisLogs(gen),
		Metrics:     synth.NewMetricSnapshots(gen),
		Diagnostics: synth.NewMySQLDiagnostics(),
		Journal:     journal,
	}
}
