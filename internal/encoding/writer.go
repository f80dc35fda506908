package encoding

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"github.com/andybalholm/brotli"
	"github.com/oesand/rawhttp/specs"
	"io"
)

func NewWriter(contentEncoding string, writer io.Writer) (io.WriteCloser, error) {
	switch contentEncoding {
	case specs.ContentEncodingGzip:
		return gzip.NewWriter(writer), nil
	case specs.ContentEncodingDeflate:
		return zlib.NewWriter(writer), nil
	case specs.ContentEncodingBrotli:
		return brotli.NewWriter(writer), nil
	}
	return nil, fmt.Errorf("unknown content encoding %s", contentEncoding)
}

// Encode compresses content in one pass.
func Encode(contentEncoding string, content string) (string, error) {
	var buf bytes.Buffer
	writer, err := NewWriter(contentEncoding, &buf)
	if err != nil {
		return "", err
	}
	if _, err = io.WriteString(writer, content); err != nil {
		return "", err
	}
	if err = writer.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
