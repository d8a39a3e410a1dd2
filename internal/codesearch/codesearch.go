// Package codesearch gives diagnosis agents read-only access to a source tree:
// file and keyword search, numbered context windows, and a regex based scan
// for common runtime failure patterns.
package codesearch

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultPattern = "*.py"

	// maxFiles caps the number of files a single search reports.
	maxFiles = 100
)

var (
	ErrOutsideRoot    = errors.New("path is outside the code root")
	ErrFileNotFound   = errors.New("file not found")
	ErrInvalidRange   = errors.New("invalid line range")
	ErrBadPattern     = errors.New("invalid file pattern")
	ErrUnknownIssue   = errors.New("unknown issue type")
	ErrEmptyCodeInput = errors.New("code snippet is empty")
)

var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"__pycache__":  {},
	".venv":        {},
}

type FileMatch struct {
	File  string   `json:"file"`
	Lines []int    `json:"lines,omitempty"`
	Text  []string `json:"text,omitempty"`
}

type SearchResult struct {
	Pattern   string      `json:"pattern"`
	Keyword   string      `json:"keyword,omitempty"`
	Files     []FileMatch `json:"files"`
	Total     int         `json:"total"`
	Truncated bool        `json:"truncated"`
}

type Searcher struct {
	root string
	// realRoot is root with symlinks resolved. Containment is checked against it.
	realRoot string
}

func New(root string) (*Searcher, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		resolved = abs
	}
	return &Searcher{root: abs, realRoot: resolved}, nil
}

func (s *Searcher) Root() string {
	return s.root
}

// Search lists files under the root whose base name matches pattern. With a
// keyword only files containing it are kept, with the matching line numbers.
// filePath narrows the search to that one file.
func (s *Searcher) Search(pattern, keyword, filePath string) (SearchResult, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return SearchResult{}, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	res := SearchResult{Pattern: pattern, Keyword: keyword, Files: []FileMatch{}}

	if filePath != "" {
		abs, err := s.resolve(filePath)
		if err != nil {
			return SearchResult{}, err
		}
		m, ok, err := s.scan(abs, keyword)
		if err != nil {
			return SearchResult{}, err
		}
		if ok {
			res.Files = append(res.Files, m)
		}
		res.Total = len(res.Files)
		return res, nil
	}

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("Skipping unreadable path")
			return nil
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != s.root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); !ok {
			return nil
		}

		m, ok, err := s.scan(path, keyword)
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("Cannot read file")
			return nil
		}
		if !ok {
			return nil
		}
		res.Total++
		if len(res.Files) < maxFiles {
			res.Files = append(res.Files, m)
		} else {
			res.Truncated = true
		}
		return nil
	})
	if err != nil {
		return SearchResult{}, errorsUtils.WrapPathErr(err)
	}
	return res, nil
}

// scan reports whether the file at abs contains keyword, case-insensitively.
// An empty keyword matches any file.
func (s *Searcher) scan(abs, keyword string) (FileMatch, bool, error) {
	m := FileMatch{File: s.rel(abs)}
	if keyword == "" {
		return m, true, nil
	}

	f, err := os.Open(abs)
	if err != nil {
		return FileMatch{}, false, err
	}
	defer f.Close()

	needle := strings.ToLower(keyword)
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		if strings.Contains(strings.ToLower(sc.Text()), needle) {
			m.Lines = append(m.Lines, n)
			m.Text = append(m.Text, strings.TrimSpace(sc.Text()))
		}
	}
	if err := sc.Err(); err != nil {
		return FileMatch{}, false, err
	}
	return m, len(m.Lines) > 0, nil
}

// resolve maps a caller supplied path onto an existing regular file under
// the root. Symlinks are followed before the containment check.
func (s *Searcher) resolve(p string) (string, error) {
	var abs string
	if filepath.IsAbs(p) {
		abs = filepath.Clean(p)
	} else {
		abs = filepath.Join(s.root, p)
	}

	if !within(s.root, abs) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, p)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrFileNotFound, p)
	}
	if !within(s.realRoot, resolved) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, p)
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrFileNotFound, p)
	}
	return abs, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (s *Searcher) rel(abs string) string {
	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}
