package specs

import "strings"

const (
	ContentTypeUndefined = ""
	ContentTypeRaw       = "application/octet-stream"
	ContentTypePlain     = "text/plain"
	ContentTypeHTML      = "text/html"
	ContentTypeJson      = "application/json"
)

// IsContentType reports whether the Content-Type header starts with contentType.
func IsContentType(headers Headers, contentType string) bool {
	return strings.HasPrefix(headers.Get("Content-Type"), contentType)
}
