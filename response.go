package rawhttp

import (
	"github.com/oesand/rawhttp/specs"
	"io"
	"slices"
	"strings"
)

// Response is an immutable response value. Every modifying method returns
// a new Response and leaves the receiver untouched, so intermediate values
// can be kept and reused.
type Response struct {
	scheme  string
	version string
	status  specs.Status
	headers specs.Headers
	content string
}

// Status returns a copy of the response with the status replaced.
func (resp Response) Status(status specs.Status) Response {
	resp.status = status
	return resp
}

// Header returns a copy of the response with header appended after all
// existing headers. Headers with the same key are never replaced.
func (resp Response) Header(header specs.Header) Response {
	headers := make(specs.Headers, len(resp.headers), len(resp.headers)+1)
	copy(headers, resp.headers)
	resp.headers = append(headers, header)
	return resp
}

// Cookie appends a Set-Cookie header with the raw value.
func (resp Response) Cookie(value string) Response {
	return resp.Header(specs.NewHeader("Set-Cookie", value))
}

func (resp Response) Scheme() string {
	return resp.scheme
}

func (resp Response) Version() string {
	return resp.version
}

func (resp Response) StatusCode() specs.Status {
	return resp.status
}

// Headers returns a copy of the headers in append order.
func (resp Response) Headers() specs.Headers {
	return slices.Clone(resp.headers)
}

func (resp Response) Content() string {
	return resp.content
}

// String renders the response in wire form. The blank line after the
// headers is always present.
func (resp Response) String() string {
	var buf strings.Builder
	buf.WriteString(resp.scheme)
	buf.WriteByte('/')
	buf.WriteString(resp.version)
	buf.WriteByte(' ')
	buf.Write(resp.status.Formatted())
	buf.WriteString(directCrlf)
	buf.Write(resp.headers.Bytes())
	buf.WriteString(directCrlf)
	buf.WriteString(resp.content)
	return buf.String()
}

// WriteTo writes the rendered response to writer.
func (resp Response) WriteTo(writer io.Writer) (int64, error) {
	n, err := io.WriteString(writer, resp.String())
	return int64(n), err
}
