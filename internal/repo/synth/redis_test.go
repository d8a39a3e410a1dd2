package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLogs_Generate(t *testing.T) {
	injected := fixedNow.Format(mysqlTimeLayout) + ` [ERROR] error="timeout" command="GET hot:key"`

	t.Run("suffix 101 gets trailing timeout at now", func(t *testing.T) {
		lines := NewRedisLogs(newTestGenerator(5)).Generate(DegradedIP, 60)
		require.Len(t, lines, redisLineCount+1)
		assert.Equal(t, injected, lines[len(lines)-1])
	})

	t.Run("other servers", func(t *testing.T) {
		lines := NewRedisLogs(newTestGenerator(5)).Generate("10.0.1.102", 60)
		require.Len(t, lines, redisLineCount)
		for _, l := range lines {
			assert.NotContains(t, l, "hot:key")
			assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[(INFO|WARN|ERROR|SLOWLOG)\]`, l)
			if strings.Contains(l, "[SLOWLOG]") {
				assert.Regexp(t, `duration=\d+ms`, l)
			}
		}
	})

	t.Run("sorted injected stays last", func(t *testing.T) {
		g := newTestGenerator(5, WithOptions(Options{SortInjected: true}))
		lines := NewRedisLogs(g).Generate("10.0.1.101", 30)
		assert.Equal(t, injected, lines[len(lines)-1])
	})
}
