package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateToolName(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{name: "ok", in: "get_mysql_logs"},
		{name: "empty", in: "", wantErr: ErrEmptyToolName},
		{name: "upper case", in: "GetLogs", wantErr: ErrInvalidToolName},
		{name: "path", in: "../etc", wantErr: ErrInvalidToolName},
		{name: "too long", in: strings.Repeat("a", 65), wantErr: ErrInvalidToolName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantErr, ValidateToolName(tc.in))
		})
	}
}
