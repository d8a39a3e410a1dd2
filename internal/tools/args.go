package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Egor213/LogiProbe/internal/logfilter"
)

// Args is the decoded argument object of a tool call. Agents send loosely
// typed values, so numbers may arrive as strings and lists as single values.
type Args map[string]any

type ArgError struct {
	Key    string
	Reason string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Key, e.Reason)
}

func (a Args) String(key string) (string, error) {
	switch v := a[key].(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return "", &ArgError{Key: key, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
}

func (a Args) RequiredString(key string) (string, error) {
	s, err := a.String(key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", &ArgError{Key: key, Reason: "is required"}
	}
	return s, nil
}

// Float returns def when key is absent, null or an empty string.
func (a Args) Float(key string, def float64) (float64, error) {
	v, ok, err := toFloat(a[key])
	if err != nil {
		return 0, &ArgError{Key: key, Reason: err.Error()}
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Int accepts integral floats such as 10.0 but rejects 10.5.
func (a Args) Int(key string, def int) (int, error) {
	v, ok, err := toFloat(a[key])
	if err != nil {
		return 0, &ArgError{Key: key, Reason: err.Error()}
	}
	if !ok {
		return def, nil
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, &ArgError{Key: key, Reason: fmt.Sprintf("expected integer, got %v", v)}
	}
	return int(v), nil
}

// Ints accepts a list, a single number or a comma separated string.
func (a Args) Ints(key string) ([]int, error) {
	var items []any
	switch v := a[key].(type) {
	case nil:
		return nil, nil
	case []any:
		items = v
	case []int:
		return v, nil
	case string:
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) != "" {
				items = append(items, part)
			}
		}
	default:
		items = []any{v}
	}

	out := make([]int, 0, len(items))
	for i, item := range items {
		n, err := Args{key: item}.Int(key, 0)
		var ae *ArgError
		if errors.As(err, &ae) {
			return nil, &ArgError{Key: fmt.Sprintf("%s[%d]", key, i), Reason: ae.Reason}
		}
		out = append(out, n)
	}
	return out, nil
}

func (a Args) Keywords(key string) (logfilter.Keywords, error) {
	kw, err := logfilter.ParseKeywords(a[key])
	if err != nil {
		return nil, &ArgError{Key: key, Reason: err.Error()}
	}
	return kw, nil
}

// First returns the first key present in a, so callers can accept aliases.
func (a Args) First(keys ...string) string {
	for _, k := range keys {
		if _, ok := a[k]; ok {
			return k
		}
	}
	return keys[0]
}

func toFloat(v any) (float64, bool, error) {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		p, err := t.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("expected number, got %q", t)
		}
		f = p
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false, nil
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, fmt.Errorf("expected number, got %q", t)
		}
		f = p
	default:
		return 0, false, fmt.Errorf("expected number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("expected finite number")
	}
	return f, true, nil
}
