package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs_Numbers(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		wantF    float64
		wantI    int
		wantFErr bool
		wantIErr bool
	}{
		{name: "absent", value: nil, wantF: 7, wantI: 7},
		{name: "float", value: 2.0, wantF: 2, wantI: 2},
		{name: "fraction", value: 2.5, wantF: 2.5, wantIErr: true},
		{name: "string number", value: " 15 ", wantF: 15, wantI: 15},
		{name: "empty string", value: "", wantF: 7, wantI: 7},
		{name: "json number", value: json.Number("3"), wantF: 3, wantI: 3},
		{name: "garbage", value: "ten", wantFErr: true, wantIErr: true},
		{name: "bool", value: true, wantFErr: true, wantIErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args := Args{"n": tc.value}

			f, err := args.Float("n", 7)
			if tc.wantFErr {
				var ae *ArgError
				assert.ErrorAs(t, err, &ae)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantF, f)
			}

			i, err := args.Int("n", 7)
			if tc.wantIErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantI, i)
			}
		})
	}
}

func TestArgs_Strings(t *testing.T) {
	args := Args{"ip": " 10.0.1.101 ", "n": 3.0, "bad": []any{"x"}}

	s, err := args.String("ip")
	require.NoError(t, err)
	assert.Equal(t, "10.0.1.101", s)

	s, err = args.String("n")
	require.NoError(t, err)
	assert.Equal(t, "3", s)

	_, err = args.String("bad")
	assert.Error(t, err)

	_, err = args.RequiredString("missing")
	assert.EqualError(t, err, `invalid argument "missing": is required`)
}

func TestArgs_Ints(t *testing.T) {
	testCases := []struct {
		name    string
		value   any
		want    []int
		wantErr string
	}{
		{name: "absent", value: nil, want: nil},
		{name: "list", value: []any{4.0, "5"}, want: []int{4, 5}},
		{name: "single", value: 9.0, want: []int{9}},
		{name: "comma string", value: "3, 4,", want: []int{3, 4}},
		{name: "bad item", value: []any{1.0, "x"}, wantErr: `invalid argument "lines[1]": expected number, got "x"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Args{"lines": tc.value}.Ints("lines")
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestArgs_KeywordsAndFirst(t *testing.T) {
	kw, err := Args{"keywords": "timeout"}.Keywords("keywords")
	require.NoError(t, err)
	assert.Equal(t, []string{"timeout"}, []string(kw))

	kw, err = Args{"keywords": []any{"a", " ", "b"}}.Keywords("keywords")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, []string(kw))

	_, err = Args{"keywords": 5.0}.Keywords("keywords")
	assert.Error(t, err)

	args := Args{"min_duration_s": 1.0}
	assert.Equal(t, "min_duration_s", args.First("min_duration", "min_duration_s"))
	assert.Equal(t, "min_duration", Args{}.First("min_duration", "min_duration_s"))
}
