package main

import (
	"github.com/oesand/rawhttp"
	"github.com/oesand/rawhttp/specs"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name       string
		buffer     string
		wantStatus specs.Status
		wantBody   string
	}{
		{
			name:       "Index",
			buffer:     "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n",
			wantStatus: specs.StatusOk,
			wantBody:   indexPage,
		},
		{
			name:       "Index rejects post",
			buffer:     "POST / HTTP/1.1\r\n\r\n",
			wantStatus: specs.StatusNotAllowed,
		},
		{
			name:       "Greeting with name",
			buffer:     "GET /hello?name=foo HTTP/1.1\r\n\r\n",
			wantStatus: specs.StatusOk,
			wantBody:   `{"message":"hello, foo"}`,
		},
		{
			name:       "Greeting without name",
			buffer:     "GET /hello? HTTP/1.1\r\n\r\n",
			wantStatus: specs.StatusOk,
			wantBody:   `{"message":"hello, world"}`,
		},
		{
			name:       "Redirect",
			buffer:     "GET /home HTTP/1.1\r\n\r\n",
			wantStatus: specs.StatusSeeOther,
		},
		{
			name:       "Echo body",
			buffer:     "POST /echo HTTP/1.1\r\nContent-Length: 4\r\n\r\nping",
			wantStatus: specs.StatusOk,
			wantBody:   "ping",
		},
		{
			name:       "Echo rejects get",
			buffer:     "GET /echo HTTP/1.1\r\n\r\n",
			wantStatus: specs.StatusNotAllowed,
		},
		{
			name:       "Not found escapes path",
			buffer:     "GET /<x> HTTP/1.1\r\n\r\n",
			wantStatus: specs.StatusNotFound,
			wantBody:   "<h1>/&lt;x&gt; not found</h1>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := rawhttp.ParseRequest(tt.buffer)
			require.NoError(t, err)

			resp := route(req)
			require.Equal(t, tt.wantStatus, resp.StatusCode())
			require.Equal(t, tt.wantBody, resp.Content())
		})
	}
}

func TestErrorResponse(t *testing.T) {
	resp := errorResponse(specs.ErrInvalidMethod)
	require.Equal(t, specs.StatusNotAllowed, resp.StatusCode())
	require.Equal(t, "Invalid or unsupported http method", resp.Content())

	resp = errorResponse(specs.ErrInvalidProtocol)
	require.Equal(t, specs.StatusBadRequest, resp.StatusCode())
	require.Equal(t, "text/plain", resp.Headers().Get("Content-Type"))
}
