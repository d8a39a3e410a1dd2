package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Egor213/LogiProbe/internal/codesearch"
	logginghelper "github.com/Egor213/LogiProbe/internal/controller/common/logging"
	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/metrics"
	"github.com/Egor213/LogiProbe/internal/service"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const unknownToolLabel = "unknown"

type Dispatcher struct {
	catalog  *Catalog
	journal  service.Journal
	counters *metrics.Counters
	now      func() time.Time
}

// NewDispatcher serves calls from c. journal may be nil.
func NewDispatcher(c *Catalog, journal service.Journal, cnt *metrics.Counters) *Dispatcher {
	return &Dispatcher{
		catalog:  c,
		journal:  journal,
		counters: cnt,
		now:      time.Now,
	}
}

func (d *Dispatcher) Catalog() *Catalog {
	return d.catalog
}

func (d *Dispatcher) Known(name string) bool {
	_, ok := d.catalog.Lookup(name)
	return ok
}

// Call runs the named tool and always returns a JSON-serializable value:
// the tool result on success, an ErrorResult otherwise.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (result any) {
	started := d.now()
	logginghelper.LogCallReceived(name, args)

	tool, ok := d.catalog.Lookup(name)
	if !ok {
		d.counters.ToolCalls.Inc(unknownToolLabel, domain.CallStatusError)
		logginghelper.LogCallFailed(name, fmt.Errorf("unknown tool"))
		return ErrorResult{
			Error:     fmt.Sprintf("unknown tool %q", name),
			Available: d.catalog.Names(),
		}
	}

	var err error
	defer func() {
		if r := recover(); r != nil {
			log.WithField("tool", name).Errorf("Tool handler panicked: %v", r)
			err = fmt.Errorf("internal error")
			result = ErrorResult{Error: "internal error"}
		}
		d.finish(ctx, name, args, started, result, err)
	}()

	var out any
	out, err = tool.Handler(ctx, Args(args))
	if err != nil {
		return toErrorResult(err)
	}
	return out
}

func (d *Dispatcher) finish(ctx context.Context, name string, args map[string]any, started time.Time, result any, err error) {
	took := d.now().Sub(started)

	status := domain.CallStatusOK
	count := resultCount(result)
	if err != nil {
		status = domain.CallStatusError
		count = 0
		logginghelper.LogCallFailed(name, err)
	} else {
		logginghelper.LogCallServed(name, took, count)
	}
	d.counters.ToolCalls.Inc(name, status)

	if d.journal == nil {
		return
	}
	raw, mErr := json.Marshal(args)
	if mErr != nil {
		raw = nil
	}
	d.journal.Record(context.WithoutCancel(ctx), domain.ToolCall{
		ID:          uuid.NewString(),
		Tool:        name,
		Arguments:   raw,
		Status:      status,
		ResultCount: count,
		Duration:    took,
		CreatedAt:   started.UTC(),
	})
}

func toErrorResult(err error) ErrorResult {
	var te *Error
	if errors.As(err, &te) {
		return ErrorResult{Error: te.Message, Available: te.Available}
	}
	return ErrorResult{Error: errorsUtils.Message(err)}
}

func resultCount(v any) int {
	switch r := v.(type) {
	case nil:
		return 0
	case domain.LogPage:
		return len(r.Records)
	case []domain.ServerDescriptor:
		return len(r)
	case map[string]float64:
		return len(r)
	case codesearch.SearchResult:
		return r.Total
	case codesearch.CodeContext:
		return len(r.Lines)
	case codesearch.Analysis:
		return len(r.Findings)
	}
	return 1
}
