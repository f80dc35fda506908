package parsing

import (
	"errors"
	"github.com/oesand/rawhttp/specs"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseStartLine(t *testing.T) {
	tests := []struct {
		name        string
		headline    string
		wantMethod  specs.HttpMethod
		wantPath    string
		wantScheme  string
		wantVersion string
		wantErr     error
	}{
		{
			name:        "Valid GET request",
			headline:    "GET /index.html HTTP/1.1",
			wantMethod:  specs.HttpMethodGet,
			wantPath:    "/index.html",
			wantScheme:  "HTTP",
			wantVersion: "1.1",
		},
		{
			name:        "Valid PATCH request with query string",
			headline:    "PATCH /update?id=42 HTTP/2.0",
			wantMethod:  specs.HttpMethodPatch,
			wantPath:    "/update?id=42",
			wantScheme:  "HTTP",
			wantVersion: "2.0",
		},
		{
			name:        "Version taken at face value",
			headline:    "DELETE /item FOO/bar",
			wantMethod:  specs.HttpMethodDelete,
			wantPath:    "/item",
			wantScheme:  "FOO",
			wantVersion: "bar",
		},
		{
			name:        "Trailing tokens ignored",
			headline:    "HEAD / HTTP/1.0 extra",
			wantMethod:  specs.HttpMethodHead,
			wantPath:    "/",
			wantScheme:  "HTTP",
			wantVersion: "1.0",
		},
		{
			name:     "Lowercase method",
			headline: "get / HTTP/1.1",
			wantErr:  specs.ErrInvalidMethod,
		},
		{
			name:     "Unknown method alone",
			headline: "HELLO",
			wantErr:  specs.ErrInvalidMethod,
		},
		{
			name:     "Missing HTTP version",
			headline: "GET /index.html",
			wantErr:  specs.ErrInvalidStartLine,
		},
		{
			name:     "Method only",
			headline: "POST",
			wantErr:  specs.ErrInvalidStartLine,
		},
		{
			name:     "Protocol without slash",
			headline: "GET / HTTP",
			wantErr:  specs.ErrInvalidProtocol,
		},
		{
			name:     "Empty headline",
			headline: "",
			wantErr:  specs.ErrInvalidMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, path, scheme, version, err := ParseStartLine(tt.headline)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr, err)
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantMethod, method)
			require.Equal(t, tt.wantPath, path)
			require.Equal(t, tt.wantScheme, scheme)
			require.Equal(t, tt.wantVersion, version)
		})
	}
}

func TestParseProtocol(t *testing.T) {
	scheme, version, err := ParseProtocol("HTTP/1.1")
	require.NoError(t, err)
	require.Equal(t, "HTTP", scheme)
	require.Equal(t, "1.1", version)

	scheme, version, err = ParseProtocol("HTTP/")
	require.NoError(t, err)
	require.Equal(t, "HTTP", scheme)
	require.Equal(t, "", version)

	_, _, err = ParseProtocol("HTTP1.1")
	require.Equal(t, specs.ErrInvalidProtocol, err)
}
