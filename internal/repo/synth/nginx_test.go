package synth

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const burstMarker = `"GET /api/v2/data.json HTTP/1.1" 502`

func TestNginxLogs_Generate(t *testing.T) {
	testCases := []struct {
		name      string
		ip        string
		window    int
		wantLines int
		wantBurst bool
	}{
		{name: "degraded server", ip: DegradedIP, window: 60, wantLines: nginxLineCount + nginxBurstSize, wantBurst: true},
		{name: "healthy server", ip: "10.0.1.101", window: 60, wantLines: nginxLineCount},
		{name: "unknown ip is accepted", ip: "not-an-ip", window: 15, wantLines: nginxLineCount},
		{name: "zero window falls back", ip: "10.0.2.102", window: 0, wantLines: nginxLineCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines := NewNginxLogs(newTestGenerator(7)).Generate(tc.ip, tc.window)
			require.Len(t, lines, tc.wantLines)

			var prev time.Time
			for _, l := range lines {
				ts, ok := nginxTime(l)
				require.True(t, ok, l)
				assert.False(t, ts.Before(prev), "lines must be in time order")
				prev = ts
			}

			run, longest := 0, 0
			for _, l := range lines {
				if strings.Contains(l, burstMarker) {
					run++
					longest = max(longest, run)
				} else {
					run = 0
				}
			}
			if tc.wantBurst {
				assert.GreaterOrEqual(t, longest, nginxBurstSize)
			}
		})
	}
}

func TestNginxLogs_BurstAtMidpoint(t *testing.T) {
	lines := NewNginxLogs(newTestGenerator(1)).Generate(DegradedIP, 60)

	mid := fixedNow.Add(-30 * time.Minute)
	burst := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "192.168.10.100 ") {
			ts, ok := nginxTime(l)
			require.True(t, ok)
			assert.WithinDuration(t, mid, ts, 0)
			burst++
		}
	}
	assert.Equal(t, nginxBurstSize, burst)
}

func TestNginxLogs_DegradedFailsMore(t *testing.T) {
	failures := func(ip string) int {
		n := 0
		for seed := range uint64(30) {
			for _, l := range NewNginxLogs(newTestGenerator(seed)).Generate(ip, 60) {
				if !strings.Contains(l, `HTTP/1.1" 200 `) {
					n++
				}
			}
		}
		return n
	}

	degraded := failures(DegradedIP)
	for _, ip := range []string{"10.0.1.101", "10.0.1.102", "10.0.2.102", "10.0.3.101"} {
		assert.Greater(t, degraded, failures(ip), ip)
	}
}

func TestNginxLogs_WindowBounds(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	properties.Property("every line falls within [now-w, now]", prop.ForAll(
		func(window int, seed uint64, degraded bool) bool {
			ip := "10.0.1.101"
			if degraded {
				ip = DegradedIP
			}
			start := fixedNow.Add(-time.Duration(window) * time.Minute)
			for _, l := range NewNginxLogs(newTestGenerator(seed)).Generate(ip, window) {
				ts, ok := nginxTime(l)
				if !ok || ts.Before(start) || ts.After(fixedNow) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 24*60),
		gen.UInt64(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
