package parsing

import (
	"github.com/oesand/rawhttp/specs"
	"strings"
)

var headerSeparator = ": "

// ParseHeaders collects the header block from lines, stopping at the first
// empty line. Malformed lines are skipped. The returned rest begins with
// the blank separator line, or is empty when the block was not terminated.
func ParseHeaders(lines []string) (headers specs.Headers, rest []string) {
	for i, line := range lines {
		if line == "" {
			return headers, lines[i:]
		}

		header, err := ParseHeaderLine(line)
		if err != nil {
			continue
		}
		headers = append(headers, header)
	}
	return headers, nil
}

// ParseHeaderLine splits "Key: Value" on the colon-space separator. Only the
// first two tokens are used, so text after a second separator is not part of
// the value.
func ParseHeaderLine(line string) (specs.Header, error) {
	parts := strings.SplitN(line, headerSeparator, 3)
	if len(parts) < 2 {
		return specs.Header{}, specs.ErrInvalidHeader
	}
	return specs.NewHeader(parts[0], parts[1]), nil
}
