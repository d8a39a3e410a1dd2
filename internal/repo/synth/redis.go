package synth

import (
	"fmt"
	"sort"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
)

const redisLineCount = 60

var (
	redisCommands = []string{
		"GET user:1",
		"GET user:10",
		"SET user:3 1",
		"HGETALL cart:22",
		"LPUSH queue:task 1001",
		"INCR counter:login",
		"DEL session:33",
	}
	redisErrors = []string{
		"timeout",
		"connection lost",
		"OOM command not allowed",
		"key not found",
		"cluster down",
	}
)

type RedisLogs struct {
	*Generator
}

func NewRedisLogs(g *Generator) *RedisLogs {
	return &RedisLogs{Generator: g}
}

func (r *RedisLogs) Source() domain.Source {
	return domain.SourceRedis
}

// Generate returns redis server/slowlog lines. Servers ending in "101" get a
// trailing timeout error stamped at the end of the window.
func (r *RedisLogs) Generate(serverIP string, windowMinutes int) []domain.RawLogLine {
	start, end, span := r.window(windowMinutes)
	step := span / redisLineCount

	lines := make([]domain.RawLogLine, 0, redisLineCount+1)
	for i := range redisLineCount {
		ts := start.Add(time.Duration(i) * step).Format(mysqlTimeLayout)
		cmd := pick(r.Generator, redisCommands)

		var line string
		switch p := r.rnd.Float64(); {
		case p < 0.10:
			line = fmt.Sprintf(`%s [ERROR] error="%s" command="%s"`, ts, pick(r.Generator, redisErrors), cmd)
		case p < 0.30:
			line = fmt.Sprintf(`%s [SLOWLOG] duration=%dms command="%s"`, ts, r.between(50, 500), cmd)
		case p < 0.50:
			line = fmt.Sprintf(`%s [WARN] command="%s"`, ts, cmd)
		default:
			line = fmt.Sprintf(`%s [INFO] command="%s"`, ts, cmd)
		}
		lines = append(lines, line)
	}

	if injectsFailure(serverIP) {
		lines = append(lines, fmt.Sprintf(`%s [ERROR] error="timeout" command="GET hot:key"`, end.Format(mysqlTimeLayout)))
		if r.opts.SortInjected {
			sortByLeadingTime(lines)
		}
	}
	return lines
}

// sortByLeadingTime orders lines that start with a fixed-width "2006-01-02 15:04:05" stamp.
// The layout sorts lexically in time order.
func sortByLeadingTime(lines []domain.RawLogLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		return leadingStamp(lines[i]) < leadingStamp(lines[j])
	})
}

func leadingStamp(line string) string {
	if len(line) < len(mysqlTimeLayout) {
		return line
	}
	return line[:len(mysqlTimeLayout)]
}
