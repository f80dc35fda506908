package specs

import (
	"bytes"
	"golang.org/x/net/http/httpguts"
)

// Header is a single key/value header line. Keys and values are not
// validated on construction.
type Header struct {
	Key   string
	Value string
}

func NewHeader(key, value string) Header {
	return Header{Key: key, Value: value}
}

// IsValid reports whether the key is an RFC 7230 token and the value
// contains only legal field-value bytes.
func (header Header) IsValid() bool {
	return httpguts.ValidHeaderFieldName(header.Key) &&
		httpguts.ValidHeaderFieldValue(header.Value)
}

func (header Header) String() string {
	return header.Key + string(directColonSpace) + header.Value
}

// Headers keeps header lines in insertion order. Repeated keys are legal
// and each occurrence is kept in place.
type Headers []Header

// Get returns the value of the first header whose key matches exactly.
func (headers Headers) Get(key string) string {
	for _, header := range headers {
		if header.Key == key {
			return header.Value
		}
	}
	return ""
}

func (headers Headers) Has(key string) bool {
	for _, header := range headers {
		if header.Key == key {
			return true
		}
	}
	return false
}

// Values returns every value stored under key, in order.
func (headers Headers) Values(key string) []string {
	var values []string
	for _, header := range headers {
		if header.Key == key {
			values = append(values, header.Value)
		}
	}
	return values
}

// Bytes renders every header followed by CRLF.
func (headers Headers) Bytes() []byte {
	if len(headers) == 0 {
		return make([]byte, 0)
	}
	var buf bytes.Buffer

	for _, header := range headers {
		buf.WriteString(header.Key)
		buf.Write(directColonSpace)
		buf.WriteString(header.Value)
		buf.Write(directCrlf)
	}

	return buf.Bytes()
}
