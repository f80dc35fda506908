package specs

import (
	"errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestStatusTable(t *testing.T) {
	tests := []struct {
		status  Status
		code    uint16
		message string
	}{
		{StatusOk, 200, "OK"},
		{StatusSeeOther, 303, "SEE OTHER"},
		{StatusBadRequest, 400, "BAD REQUEST"},
		{StatusUnauthorized, 401, "UNAUTHORIZED"},
		{StatusForbidden, 403, "FORBIDDEN"},
		{StatusNotFound, 404, "NOT FOUND"},
		{StatusNotAllowed, 405, "NOT ALLOWED"},
		{StatusInternalServerError, 500, "INTERNAL SERVER ERROR"},
	}

	require.Len(t, Statuses, len(tests))
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			require.Equal(t, tt.code, tt.status.Code())
			require.Equal(t, tt.message, tt.status.Message())

			back, err := StatusFromCode(tt.code)
			require.NoError(t, err)
			require.Equal(t, tt.status, back)
		})
	}
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "404 NOT FOUND", StatusNotFound.String())
	require.Equal(t, "500 INTERNAL SERVER ERROR", StatusInternalServerError.String())
	require.Equal(t, "200 OK", StatusOk.String())
}

func TestStatusFromUnknownCode(t *testing.T) {
	_, err := StatusFromCode(418)
	require.True(t, errors.Is(err, ErrInvalidCode))
	require.Equal(t, ErrorKindInvalidCode, KindOf(err))
}

func TestStatusUndeclared(t *testing.T) {
	status := Status(len(Statuses))

	require.False(t, status.IsValid())
	require.NotPanics(t, func() { _ = status.String() })
	require.Equal(t, uint16(0), status.Code())
	require.Equal(t, "", status.Message())
	require.Equal(t, "0 ", status.String())

	for _, declared := range Statuses {
		require.True(t, declared.IsValid())
	}
}
