package codesearch

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	IssueMissingTimeout = "missing_timeout"
	IssueUnboundedCache = "unbounded_cache"
	IssueBareExcept     = "bare_except"
	IssueConnectionLeak = "connection_leak"
	IssueNPlusOne       = "n_plus_one"
	IssueBlockingSleep  = "blocking_sleep"
	IssueLockOrdering   = "lock_ordering"
)

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

type Finding struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Line     int    `json:"line"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

type Analysis struct {
	IssueType string    `json:"issue_type,omitempty"`
	Findings  []Finding `json:"findings"`
	Summary   string    `json:"summary"`
}

// lineRule fires on a line matching re unless the same line also matches unless.
type lineRule struct {
	issue    string
	severity string
	message  string
	re       *regexp.Regexp
	unless   *regexp.Regexp
}

var lineRules = []lineRule{
	{
		issue:    IssueMissingTimeout,
		severity: SeverityHigh,
		message:  "outbound call without a timeout can block a worker indefinitely",
		re:       regexp.MustCompile(`\b(requests\.(get|post|put|delete|patch)|urlopen|http\.(Get|Post))\(`),
		unless:   regexp.MustCompile(`(?i)timeout`),
	},
	{
		issue:    IssueUnboundedCache,
		severity: SeverityHigh,
		message:  "module level cache grows without eviction",
		re:       regexp.MustCompile(`^[A-Za-z_]*(?i:cache)[A-Za-z_]*\s*(:[^=]+)?=\s*(\{\}|dict\(\)|\[\]|make\(map)`),
	},
	{
		issue:    IssueBareExcept,
		severity: SeverityMedium,
		message:  "bare except swallows every error including interrupts",
		re:       regexp.MustCompile(`^\s*except\s*:`),
	},
	{
		issue:    IssueConnectionLeak,
		severity: SeverityHigh,
		message:  "connection opened without a context manager or close",
		re:       regexp.MustCompile(`\b(connect|get_connection|cursor|sql\.Open)\(`),
		unless:   regexp.MustCompile(`^\s*(with\s|defer\s)|\.close\(\)|Close\(\)`),
	},
	{
		issue:    IssueBlockingSleep,
		severity: SeverityMedium,
		message:  "blocking sleep on a request path",
		re:       regexp.MustCompile(`\btime\.(sleep|Sleep)\(`),
	},
}

var (
	loopRe  = regexp.MustCompile(`^(\s*)(for|while)\b`)
	queryRe = regexp.MustCompile(`\.(execute|query|Query|QueryRow|fetchone|fetchall)\(|\.objects\.get\(`)
	lockRe  = regexp.MustCompile(`(\w+)\.(acquire|Lock)\(\)`)
)

// IssueTypes lists every type Analyze can report, in rule order.
func IssueTypes() []string {
	return []string{
		IssueMissingTimeout, IssueUnboundedCache, IssueBareExcept,
		IssueConnectionLeak, IssueNPlusOne, IssueBlockingSleep, IssueLockOrdering,
	}
}

func knownIssue(t string) bool {
	for _, it := range IssueTypes() {
		if it == t {
			return true
		}
	}
	return false
}

// Analyze scans snippet for known failure patterns. A non-empty issueType
// restricts the findings to that type.
func Analyze(snippet, issueType string) (Analysis, error) {
	if strings.TrimSpace(snippet) == "" {
		return Analysis{}, ErrEmptyCodeInput
	}
	issueType = strings.ToLower(strings.TrimSpace(issueType))
	if issueType != "" && !knownIssue(issueType) {
		return Analysis{}, fmt.Errorf("%w: %q", ErrUnknownIssue, issueType)
	}

	lines := strings.Split(strings.ReplaceAll(snippet, "\r\n", "\n"), "\n")

	var findings []Finding
	findings = append(findings, scanLines(lines)...)
	findings = append(findings, scanLoops(lines)...)
	findings = append(findings, scanLocks(lines)...)

	out := Analysis{IssueType: issueType, Findings: []Finding{}}
	for _, f := range findings {
		if issueType == "" || f.Type == issueType {
			out.Findings = append(out.Findings, f)
		}
	}
	sort.SliceStable(out.Findings, func(i, j int) bool {
		return out.Findings[i].Line < out.Findings[j].Line
	})

	if len(out.Findings) == 0 {
		out.Summary = "no known issue patterns found"
	} else {
		out.Summary = fmt.Sprintf("%d potential issue(s) found", len(out.Findings))
	}
	return out, nil
}

func scanLines(lines []string) []Finding {
	var out []Finding
	for i, line := range lines {
		for _, r := range lineRules {
			if !r.re.MatchString(line) {
				continue
			}
			if r.unless != nil && r.unless.MatchString(line) {
				continue
			}
			out = append(out, Finding{
				Type:     r.issue,
				Severity: r.severity,
				Line:     i + 1,
				Code:     strings.TrimSpace(line),
				Message:  r.message,
			})
		}
	}
	return out
}

// scanLoops reports queries issued from inside a loop body, judged by indentation.
func scanLoops(lines []string) []Finding {
	var out []Finding
	loopIndent := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if loopIndent >= 0 && indent <= loopIndent {
			loopIndent = -1
		}
		if m := loopRe.FindStringSubmatch(line); m != nil {
			if loopIndent < 0 {
				loopIndent = len(m[1])
			}
			continue
		}
		if loopIndent >= 0 && queryRe.MatchString(line) {
			out = append(out, Finding{
				Type:     IssueNPlusOne,
				Severity: SeverityMedium,
				Line:     i + 1,
				Code:     strings.TrimSpace(line),
				Message:  "query issued once per loop iteration",
			})
		}
	}
	return out
}

// scanLocks reports the first acquisition of a second distinct lock.
func scanLocks(lines []string) []Finding {
	var first string
	for i, line := range lines {
		for _, m := range lockRe.FindAllStringSubmatch(line, -1) {
			switch {
			case first == "":
				first = m[1]
			case m[1] != first:
				return []Finding{{
					Type:     IssueLockOrdering,
					Severity: SeverityHigh,
					Line:     i + 1,
					Code:     strings.TrimSpace(line),
					Message:  fmt.Sprintf("acquires %s while %s may be held; inconsistent order can deadlock", m[1], first),
				}}
			}
		}
	}
	return nil
}
