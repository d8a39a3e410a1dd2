package logfilter_test

import (
	"encoding/json"
	"testing"

	"github.com/Egor213/LogiProbe/internal/logfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    logfilter.Keywords
		wantErr bool
	}{
		{name: "single string", input: `{"keywords":"Deadlock"}`, want: logfilter.Keywords{"Deadlock"}},
		{name: "comma is not a separator", input: `{"keywords":"a,b"}`, want: logfilter.Keywords{"a,b"}},
		{name: "list", input: `{"keywords":["timeout","OOM"]}`, want: logfilter.Keywords{"timeout", "OOM"}},
		{name: "blanks dropped", input: `{"keywords":["", "  ", "x"]}`, want: logfilter.Keywords{"x"}},
		{name: "null", input: `{"keywords":null}`},
		{name: "number", input: `{"keywords":42}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var body struct {
				Keywords logfilter.Keywords `json:"keywords"`
			}
			err := json.Unmarshal([]byte(tc.input), &body)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, body.Keywords)
		})
	}
}

func TestParseKeywords(t *testing.T) {
	got, err := logfilter.ParseKeywords([]any{"GET", "SET"})
	require.NoError(t, err)
	assert.Equal(t, logfilter.Keywords{"GET", "SET"}, got)

	got, err = logfilter.ParseKeywords("slow")
	require.NoError(t, err)
	assert.Equal(t, logfilter.Keywords{"slow"}, got)

	got, err = logfilter.ParseKeywords(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = logfilter.ParseKeywords([]any{"ok", 3})
	assert.Error(t, err)

	_, err = logfilter.ParseKeywords(3.5)
	assert.Error(t, err)
}

func TestKeywords_Match(t *testing.T) {
	kw := logfilter.Keywords{"deadlock", "TIMEOUT"}

	assert.True(t, kw.Match(`[WARN] [Deadlock] duration=1s`))
	assert.True(t, kw.Match(`error="timeout"`))
	assert.False(t, kw.Match(`[INFO] command="GET user:1"`))
	assert.True(t, logfilter.Keywords(nil).Match("anything"))
}
