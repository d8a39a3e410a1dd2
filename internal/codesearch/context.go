package codesearch

import (
	"bufio"
	"fmt"
	"os"

	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
)

const (
	DefaultContextStart = 1
	DefaultContextEnd   = 50
)

type ContextLine struct {
	Number    int    `json:"number"`
	Text      string `json:"text"`
	Highlight bool   `json:"highlight,omitempty"`
}

type CodeContext struct {
	File       string        `json:"file"`
	Start      int           `json:"start"`
	End        int           `json:"end"`
	TotalLines int           `json:"total_lines"`
	Lines      []ContextLine `json:"lines"`
}

// Context returns lines start..end of filePath, both inclusive. The range is
// clamped to the file; a start past the last line is an error.
func (s *Searcher) Context(filePath string, start, end int, highlight []int) (CodeContext, error) {
	abs, err := s.resolve(filePath)
	if err != nil {
		return CodeContext{}, err
	}
	if start < 1 {
		start = DefaultContextStart
	}
	if end < start {
		return CodeContext{}, fmt.Errorf("%w: %d-%d", ErrInvalidRange, start, end)
	}

	marks := make(map[int]struct{}, len(highlight))
	for _, n := range highlight {
		marks[n] = struct{}{}
	}

	f, err := os.Open(abs)
	if err != nil {
		return CodeContext{}, errorsUtils.WrapPathErr(err)
	}
	defer f.Close()

	out := CodeContext{File: s.rel(abs), Start: start, Lines: []ContextLine{}}
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		if n < start || n > end {
			continue
		}
		_, hl := marks[n]
		out.Lines = append(out.Lines, ContextLine{Number: n, Text: sc.Text(), Highlight: hl})
	}
	if err := sc.Err(); err != nil {
		return CodeContext{}, errorsUtils.WrapPathErr(err)
	}

	out.TotalLines = n
	if start > n {
		return CodeContext{}, fmt.Errorf("%w: start %d beyond %d lines", ErrInvalidRange, start, n)
	}
	out.End = min(end, n)
	return out, nil
}
