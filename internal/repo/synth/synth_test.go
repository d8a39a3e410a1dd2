package synth

import (
	"math/rand/v2"
	"strings"
	"time"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64, opts ...Option) *Generator {
	base := []Option{
		WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		WithClock(func() time.Time { return fixedNow }),
	}
	return New(append(base, opts...)...)
}

func nginxTime(line string) (time.Time, bool) {
	open := strings.IndexByte(line, '[')
	end := strings.IndexByte(line, ']')
	if open < 0 || end < open {
		return time.Time{}, false
	}
	t, err := time.Parse(nginxTimeLayout, line[open+1:end])
	return t.UTC(), err == nil
}

func leadingTime(line string) (time.Time, bool) {
	t, err := time.Parse(mysqlTimeLayout, leadingStamp(line))
	return t, err == nil
}
