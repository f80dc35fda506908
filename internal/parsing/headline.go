package parsing

import (
	"github.com/oesand/rawhttp/specs"
	"strings"
)

// ParseStartLine parses a request start line: GET /index.html HTTP/1.1
//
// Tokens are separated by single spaces and consumed in order, so the method
// is resolved before the presence of the path and protocol is checked.
// Anything after the protocol token is ignored.
func ParseStartLine(line string) (method specs.HttpMethod, path, scheme, version string, err error) {
	parts := strings.Split(line, " ")

	method, err = specs.ParseMethod(parts[0])
	if err != nil {
		return
	}
	if len(parts) < 3 {
		err = specs.ErrInvalidStartLine
		return
	}
	path = parts[1]

	scheme, version, err = ParseProtocol(parts[2])
	return
}

// ParseProtocol splits a protocol token such as HTTP/1.1 into scheme and version.
// The version is taken at face value.
func ParseProtocol(token string) (scheme, version string, err error) {
	parts := strings.Split(token, "/")
	if len(parts) < 2 {
		return "", "", specs.ErrInvalidProtocol
	}
	return parts[0], parts[1], nil
}
