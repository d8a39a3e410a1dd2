package synth

import (
	"testing"

	"github.com/Egor213/LogiProbe/internal/repo/repoerrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDiagnostics_Diagnose(t *testing.T) {
	d := NewMySQLDiagnostics()

	for _, action := range d.Actions() {
		t.Run(action, func(t *testing.T) {
			report, err := d.Diagnose("10.0.3.101", action)
			require.NoError(t, err)
			assert.Equal(t, action, report["type"])
			assert.Equal(t, "10.0.3.101", report["server_ip"])
		})
	}

	_, err := d.Diagnose("10.0.3.101", "drop_database")
	assert.ErrorIs(t, err, repoerrs.ErrNotFound)
}
