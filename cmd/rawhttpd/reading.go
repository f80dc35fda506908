package main

import (
	"bufio"
	"errors"
	"github.com/oesand/rawhttp/internal/parsing"
	"io"
	"strconv"
	"strings"
)

var errRequestTooLarge = errors.New("rawhttpd: request too large")

// rawRequest is a request exactly as it came off the wire.
type rawRequest struct {
	// Text is the whole request, head and body.
	Text string

	// Body holds the Content-Length framed bytes, untouched by line parsing.
	Body string
}

// readRequest reads the head up to the blank line, then as many body bytes
// as Content-Length announces. A peer closing its side early yields
// whatever was read so far. Nothing beyond limit bytes is buffered.
func readRequest(reader *bufio.Reader, limit int) (rawRequest, error) {
	var buf strings.Builder
	var contentLength int
	startLine := true

	for {
		line, err := reader.ReadString('\n')
		if buf.Len()+len(line) > limit {
			return rawRequest{}, errRequestTooLarge
		}
		buf.WriteString(line)

		if err != nil {
			if errors.Is(err, io.EOF) && buf.Len() > 0 {
				return rawRequest{Text: buf.String()}, nil
			}
			return rawRequest{}, err
		}
		if line == "\r\n" {
			break
		}
		if startLine {
			startLine = false
			continue
		}

		header, err := parsing.ParseHeaderLine(strings.TrimSuffix(line, "\r\n"))
		if err == nil && strings.EqualFold(header.Key, "Content-Length") {
			if n, err := strconv.Atoi(header.Value); err == nil && n > 0 {
				contentLength = n
			}
		}
	}

	if contentLength == 0 {
		return rawRequest{Text: buf.String()}, nil
	}
	if buf.Len()+contentLength > limit {
		return rawRequest{}, errRequestTooLarge
	}

	body := make([]byte, contentLength)
	n, err := io.ReadFull(reader, body)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return rawRequest{}, err
	}
	buf.Write(body[:n])

	return rawRequest{
		Text: buf.String(),
		Body: string(body[:n]),
	}, nil
}
