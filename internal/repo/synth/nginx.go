package synth

import (
	"fmt"
	"sort"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
)

const (
	nginxLineCount = 100
	nginxBurstSize = 10

	nginxUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

var (
	nginxEndpoints = []string{
		"/api/v2/data.json",
		"/api/v1/users",
		"/api/v1/products",
		"/static/js/app.js",
		"/health",
	}
	nginxMethods       = []string{"GET", "POST"}
	nginxFailureStatus = []int{502, 500, 504, 499}
)

type NginxLogs struct {
	*Generator
}

func NewNginxLogs(g *Generator) *NginxLogs {
	return &NginxLogs{Generator: g}
}

func (n *NginxLogs) Source() domain.Source {
	return domain.SourceNginx
}

// Generate returns access log lines in timestamp order. The degraded server
// gets a higher failure ratio and a burst of 502s in the middle of the window.
func (n *NginxLogs) Generate(serverIP string, windowMinutes int) []domain.RawLogLine {
	start, _, span := n.window(windowMinutes)
	step := span / nginxLineCount

	failureRatio := 0.05
	if serverIP == DegradedIP {
		failureRatio = 0.4
	}

	type stamped struct {
		at   time.Time
		line string
	}
	lines := make([]stamped, 0, nginxLineCount+nginxBurstSize)

	for i := range nginxLineCount {
		at := start.Add(time.Duration(i) * step)

		status, rt := 200, n.uniform(0.05, 0.5)
		if n.rnd.Float64() < failureRatio {
			status, rt = pick(n.Generator, nginxFailureStatus), n.uniform(2.0, 10.0)
		}
		path := pick(n.Generator, nginxEndpoints)
		method := pick(n.Generator, nginxMethods)
		client := fmt.Sprintf("192.168.1.%d", n.between(1, 255))

		lines = append(lines, stamped{
			at: at,
			line: fmt.Sprintf(`%s - - [%s] "%s %s HTTP/1.1" %d %d "-" "%s" %.3f`,
				client, at.Format(nginxTimeLayout), method, path, status, n.between(100, 5000), nginxUserAgent, rt),
		})
	}

	if serverIP == DegradedIP {
		mid := start.Add(span / 2)
		burst := fmt.Sprintf(`192.168.10.100 - - [%s] "GET /api/v2/data.json HTTP/1.1" 502 0 "-" "Python-urllib/3.9" 8.456`,
			mid.Format(nginxTimeLayout))
		for range nginxBurstSize {
			lines = append(lines, stamped{at: mid, line: burst})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].at.Before(lines[j].at)
	})

	out := make([]domain.RawLogLine, len(lines))
	for i, l := range lines {
		out[i] = l.line
	}
	return out
}
