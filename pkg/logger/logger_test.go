package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(bytes.NewBuffer(nil))
		log.SetLevel(log.InfoLevel)
	})

	t.Run("json with caller", func(t *testing.T) {
		var buf bytes.Buffer
		setup(&buf, "debug", "json")

		log.Debug("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "debug", entry["level"])
		assert.Contains(t, entry["file"], "logger_test.go:")
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		setup(&buf, "loud", "text")

		assert.Equal(t, log.InfoLevel, log.GetLevel())
		log.Debug("hidden")
		assert.NotContains(t, buf.String(), "hidden")
	})
}
