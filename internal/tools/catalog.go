// Package tools is the transport-agnostic tool surface served over MCP, HTTP
// and gRPC. Every call resolves to a JSON-serializable value; failures come
// back as ErrorResult values instead of transport errors.
package tools

import (
	"context"
	"encoding/json"

	"github.com/Egor213/LogiProbe/internal/codesearch"
	"github.com/Egor213/LogiProbe/internal/service"
)

const (
	ToolNginxServers   = "get_nginx_servers"
	ToolServerLogs     = "get_server_logs"
	ToolMySQLLogs      = "get_mysql_logs"
	ToolRedisLogs      = "get_redis_logs"
	ToolServerMetrics  = "get_server_metrics"
	ToolMySQLDiagnosis = "mysql_runtime_diagnosis"
	ToolSearchCode     = "search_code_in_repository"
	ToolCodeContext    = "get_code_context"
	ToolAnalyzeCode    = "analyze_code_pattern"
)

type Handler func(ctx context.Context, args Args) (any, error)

type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
	Handler     Handler         `json:"-"`
}

type Catalog struct {
	tools  []Tool
	byName map[string]int
}

// NewCatalog registers every tool backed by svc. Code inspection tools are
// only registered when code is non-nil.
func NewCatalog(svc *service.Services, code *codesearch.Searcher) *Catalog {
	h := &handlers{svc: svc, code: code}

	c := &Catalog{byName: make(map[string]int)}
	c.add(Tool{
		Name:        ToolNginxServers,
		Description: "List the Nginx fleet with IP, hostname, role, region and health status.",
		InputSchema: emptySchema,
		Handler:     h.nginxServers,
	})
	c.add(Tool{
		Name:        ToolServerLogs,
		Description: "Fetch Nginx access logs of a server as unified records, filtered by endpoint, keywords, duration and time window.",
		InputSchema: serverLogsSchema,
		Handler:     h.serverLogs,
	})
	c.add(Tool{
		Name:        ToolMySQLLogs,
		Description: "Fetch MySQL slow/error logs of a server as unified records. Use next_cursor as start_time to page.",
		InputSchema: mysqlLogsSchema,
		Handler:     h.mysqlLogs,
	})
	c.add(Tool{
		Name:        ToolRedisLogs,
		Description: "Fetch Redis logs of a server as unified records, SLOWLOG entries reported as WARN.",
		InputSchema: redisLogsSchema,
		Handler:     h.redisLogs,
	})
	c.add(Tool{
		Name:        ToolServerMetrics,
		Description: "Get a performance snapshot of a server, or a single metric when metric_name is set.",
		InputSchema: metricsSchema,
		Handler:     h.serverMetrics,
	})
	c.add(Tool{
		Name:        ToolMySQLDiagnosis,
		Description: "Inspect MySQL runtime state: processlist, innodb_status, variables or connections.",
		InputSchema: diagnosisSchema,
		Handler:     h.mysqlDiagnosis,
	})

	if code != nil {
		c.add(Tool{
			Name:        ToolSearchCode,
			Description: "Search the code repository for files by pattern, optionally containing a keyword.",
			InputSchema: searchCodeSchema,
			Handler:     h.searchCode,
		})
		c.add(Tool{
			Name:        ToolCodeContext,
			Description: "Read numbered lines of a repository file, marking highlighted lines.",
			InputSchema: codeContextSchema,
			Handler:     h.codeContext,
		})
		c.add(Tool{
			Name:        ToolAnalyzeCode,
			Description: "Scan a code snippet for common failure patterns such as missing timeouts or connection leaks.",
			InputSchema: analyzeCodeSchema,
			Handler:     h.analyzeCode,
		})
	}
	return c
}

func (c *Catalog) add(t Tool) {
	c.byName[t.Name] = len(c.tools)
	c.tools = append(c.tools, t)
}

func (c *Catalog) Tools() []Tool {
	out := make([]Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.tools))
	for _, t := range c.tools {
		out = append(out, t.Name)
	}
	return out
}

func (c *Catalog) Lookup(name string) (Tool, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}
