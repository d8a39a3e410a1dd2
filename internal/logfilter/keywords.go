package logfilter

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Keywords accepts either a single string or a list of strings. A single
// string is one keyword; it is not split on commas.
type Keywords []string

func (k *Keywords) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*k = normalize([]string{single})
		return nil
	}

	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("keywords must be a string or a list of strings: %w", err)
	}
	*k = normalize(list)
	return nil
}

// ParseKeywords converts a loosely typed argument value into Keywords.
func ParseKeywords(v any) (Keywords, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return normalize([]string{t}), nil
	case []string:
		return normalize(t), nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("keywords[%d]: expected string, got %T", i, item)
			}
			out = append(out, s)
		}
		return normalize(out), nil
	}
	return nil, fmt.Errorf("keywords: expected string or list of strings, got %T", v)
}

// Match reports whether line contains any keyword, ignoring case. Empty
// Keywords match everything.
func (k Keywords) Match(line string) bool {
	if len(k) == 0 {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range k {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// normalize drops blank entries, which would otherwise match every line.
func normalize(in []string) Keywords {
	var out Keywords
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
