package rawhttp

import (
	"github.com/oesand/rawhttp/internal/parsing"
	"github.com/oesand/rawhttp/specs"
	"strings"
)

// Request is a fully parsed request. It shares no memory with the buffer it
// was parsed from.
type Request struct {
	Method  specs.HttpMethod
	Path    specs.Path
	Scheme  string
	Version string
	Headers specs.Headers
	Body    string
}

// ParseRequest parses a complete request buffer.
//
// The start line is parsed strictly and any failure there is returned.
// Header lines that cannot be split are skipped. The body is everything
// after the first empty line with line terminators removed; without an
// empty line the body is empty.
func ParseRequest(buffer string) (*Request, error) {
	if buffer == "" {
		return nil, specs.ErrInvalidRequest
	}
	// Parsed fields must not reference the caller's buffer.
	lines := strings.Split(strings.Clone(buffer), directCrlf)

	method, rawPath, scheme, version, err := parsing.ParseStartLine(lines[0])
	if err != nil {
		return nil, err
	}

	headers, rest := parsing.ParseHeaders(lines[1:])

	return &Request{
		Method:  method,
		Path:    specs.ParsePath(rawPath),
		Scheme:  scheme,
		Version: version,
		Headers: headers,
		Body:    parsing.JoinBody(rest),
	}, nil
}

// Header returns the first header value stored under the exact key.
func (req *Request) Header(key string) string {
	return req.Headers.Get(key)
}

// String renders the request back to wire form. Header lines that were
// dropped during parsing are not restored.
func (req *Request) String() string {
	var buf strings.Builder
	buf.WriteString(req.Method.String())
	buf.WriteByte(' ')
	buf.WriteString(req.Path.String())
	buf.WriteByte(' ')
	buf.WriteString(req.Scheme)
	buf.WriteByte('/')
	buf.WriteString(req.Version)
	buf.WriteString(directCrlf)
	buf.Write(req.Headers.Bytes())
	buf.WriteString(directCrlf)
	buf.WriteString(req.Body)
	return buf.String()
}
