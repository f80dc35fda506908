package encoding

import (
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"github.com/andybalholm/brotli"
	"github.com/oesand/rawhttp/specs"
	"io"
	"strings"
)

// Decode reverses Encode. The content is expected to be the exact encoded
// bytes, so callers must take it from framing they trust rather than from a
// parsed body, which loses CRLF sequences.
func Decode(contentEncoding string, content string) (string, error) {
	source := strings.NewReader(content)

	var decoder io.Reader
	switch contentEncoding {
	case specs.ContentEncodingGzip:
		gz, err := gzip.NewReader(source)
		if err != nil {
			return "", fmt.Errorf("gzip header: %w", err)
		}
		defer gz.Close()
		decoder = gz
	case specs.ContentEncodingDeflate:
		zr, err := zlib.NewReader(source)
		if err != nil {
			return "", fmt.Errorf("deflate header: %w", err)
		}
		defer zr.Close()
		decoder = zr
	case specs.ContentEncodingBrotli:
		decoder = brotli.NewReader(source)
	default:
		return "", fmt.Errorf("unknown content encoding %s", contentEncoding)
	}

	decoded, err := io.ReadAll(decoder)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", contentEncoding, err)
	}
	return string(decoded), nil
}
