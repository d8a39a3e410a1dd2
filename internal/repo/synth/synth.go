// Package synth generates the synthetic fleet data served to diagnosis agents:
// the server directory, Nginx/MySQL/Redis logs and metric snapshots.
//
// Every call draws fresh randomness, so two calls with the same arguments
// are not expected to agree. A generator holds no mutable state of its own
// and is safe for concurrent use as long as its Rand is.
package synth

import (
	"math/rand/v2"
	"strings"
	"time"
)

const (
	// DegradedIP is the server all synthesizers bias toward failure.
	DegradedIP = "10.0.2.101"

	DefaultWindowMinutes = 60
	// MaxWindowMinutes caps any requested window at one year.
	MaxWindowMinutes = 365 * 24 * 60

	// MySQL and Redis inject one extra failure for servers whose IP ends in this suffix.
	injectSuffix = "101"

	mysqlTimeLayout = "2006-01-02 15:04:05"
	nginxTimeLayout = "02/Jan/2006:15:04:05 -0700"
)

// Rand is the subset of *rand.Rand the synthesizers draw from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

type Options struct {
	// SortInjected re-sorts the trailing injected MySQL/Redis line into timestamp order.
	// By default it stays appended at the end.
	SortInjected  bool
	WindowMinutes int
}

type Option func(*Generator)

func WithRand(r Rand) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func WithOptions(o Options) Option {
	return func(g *Generator) {
		g.opts = o
	}
}

// Generator is shared by every synthesizer in this package.
type Generator struct {
	rnd  Rand
	now  func() time.Time
	opts Options
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rnd: globalRand{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.opts.WindowMinutes <= 0 {
		g.opts.WindowMinutes = DefaultWindowMinutes
	}
	g.opts.WindowMinutes = min(g.opts.WindowMinutes, MaxWindowMinutes)
	return g
}

// windowMinutes applies the default to non-positive values and clamps to MaxWindowMinutes.
func (g *Generator) windowMinutes(minutes int) int {
	if minutes < 1 {
		minutes = g.opts.WindowMinutes
	}
	return min(minutes, MaxWindowMinutes)
}

func (g *Generator) window(minutes int) (start, end time.Time, span time.Duration) {
	minutes = g.windowMinutes(minutes)
	end = g.now().UTC().Truncate(time.Second)
	span = time.Duration(minutes) * time.Minute
	return end.Add(-span), end, span
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rnd.Float64()*(hi-lo)
}

// between returns an int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}

func pick[T any](g *Generator, items []T) T {
	return items[g.rnd.IntN(len(items))]
}

func injectsFailure(serverIP string) bool {
	return strings.HasSuffix(serverIP, injectSuffix)
}
