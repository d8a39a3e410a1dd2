package errorsUtils_test

import (
	"errors"
	"fmt"
	"testing"

	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapPathErr(t *testing.T) {
	base := errors.New("boom")

	err := errorsUtils.WrapPathErr(base)

	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "TestWrapPathErr")
	assert.Contains(t, err.Error(), "boom")
	assert.NoError(t, errorsUtils.WrapPathErr(nil))
}

func TestPgCodes(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		unique bool
		table  bool
	}{
		{name: "unique", err: &pgconn.PgError{Code: errorsUtils.CodeUniqueViolation}, unique: true},
		{name: "wrapped undefined table", err: fmt.Errorf("x: %w", &pgconn.PgError{Code: errorsUtils.CodeUndefinedTable}), table: true},
		{name: "plain", err: errors.New("plain")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.unique, errorsUtils.IsUniqueViolation(tc.err))
			assert.Equal(t, tc.table, errorsUtils.IsUndefinedTable(tc.err))
			assert.False(t, errorsUtils.IsForeignKeyViolation(tc.err))
		})
	}

	assert.True(t, errorsUtils.IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
}

func TestMessage(t *testing.T) {
	base := errors.New("unknown metric: \"disk\"")
	err := errorsUtils.WrapPathErr(fmt.Errorf("outer: %w", errorsUtils.WrapPathErr(base)))

	assert.Equal(t, "outer: unknown metric: \"disk\"", errorsUtils.Message(err))
	assert.Equal(t, "[not a path] kept", errorsUtils.Message(errors.New("[not a path] kept")))
	assert.Empty(t, errorsUtils.Message(nil))
}
