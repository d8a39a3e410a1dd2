package tools

import "encoding/json"

const keywordsSchema = `{
      "anyOf": [
        {"type": "string"},
        {"type": "array", "items": {"type": "string"}}
      ],
      "description": "Case-insensitive keyword or list of keywords; a line matching any of them is kept"
    }`

const timeBoundsSchema = `"start_time": {"type": "string", "description": "Exclusive lower bound, YYYY-MM-DD HH:MM:SS or RFC3339. Pass next_cursor here to fetch the next page"},
    "end_time": {"type": "string", "description": "Inclusive upper bound, YYYY-MM-DD HH:MM:SS or RFC3339"},
    "limit": {"type": "integer", "minimum": 1, "description": "Maximum number of records on the page"},
    "window_minutes": {"type": "integer", "minimum": 1, "description": "Length of the synthesized window ending now"}`

var (
	emptySchema = json.RawMessage(`{"type": "object", "properties": {}}`)

	serverLogsSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "server_ip": {"type": "string", "description": "Server IP from get_nginx_servers"},
    "api_endpoint": {"type": "string", "description": "Case-sensitive substring of the request line, e.g. /api/v2/data.json"},
    "keywords": ` + keywordsSchema + `,
    "min_duration_s": {"type": "number", "minimum": 0, "description": "Keep requests that took at least this many seconds"},
    ` + timeBoundsSchema + `
  },
  "required": ["server_ip"]
}`)

	mysqlLogsSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "server_ip": {"type": "string"},
    "keywords": ` + keywordsSchema + `,
    "min_duration_s": {"type": "number", "minimum": 0, "description": "Keep queries that took at least this many seconds"},
    ` + timeBoundsSchema + `
  },
  "required": ["server_ip"]
}`)

	redisLogsSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "server_ip": {"type": "string"},
    "keywords": ` + keywordsSchema + `,
    "min_duration": {"type": "number", "minimum": 0, "description": "Keep commands that took at least this many seconds"},
    ` + timeBoundsSchema + `
  },
  "required": ["server_ip"]
}`)

	metricsSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "server_ip": {"type": "string"},
    "metric_name": {"type": "string", "description": "Single metric such as cpu_percent or an alias like cpu, memory, latency. Omit for the full snapshot"},
    "window_minutes": {"type": "integer", "minimum": 1}
  },
  "required": ["server_ip"]
}`)

	diagnosisSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "server_ip": {"type": "string"},
    "action": {"type": "string", "enum": ["processlist", "innodb_status", "variables", "connections"]}
  },
  "required": ["server_ip", "action"]
}`)

	searchCodeSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "file_pattern": {"type": "string", "default": "*.py", "description": "Glob matched against file names, e.g. *.py or *.go"},
    "keyword": {"type": "string", "description": "Case-insensitive text to look for"},
    "file_path": {"type": "string", "description": "Restrict the search to one file, relative to the code root"}
  }
}`)

	codeContextSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "file_path": {"type": "string"},
    "line_start": {"type": "integer", "default": 1},
    "line_end": {"type": "integer", "default": 50},
    "highlight_lines": {"type": "array", "items": {"type": "integer"}}
  },
  "required": ["file_path"]
}`)

	analyzeCodeSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "code_snippet": {"type": "string"},
    "issue_type": {
      "type": "string",
      "enum": ["missing_timeout", "unbounded_cache", "bare_except", "connection_leak", "n_plus_one", "blocking_sleep", "lock_ordering"]
    }
  },
  "required": ["code_snippet"]
}`)
)
