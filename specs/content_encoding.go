package specs

// ContentEncoding constants name the codings a response body can be
// compressed with. The values are based on the IANA HTTP Content-Encoding registry.
//
// Reference: https://www.iana.org/assignments/http-parameters/http-parameters.xhtml
const (
	ContentEncodingGzip    = "gzip"
	ContentEncodingDeflate = "deflate"
	ContentEncodingBrotli  = "br"
)

func IsKnownEncoding(contentEncoding string) bool {
	switch contentEncoding {
	case ContentEncodingGzip, ContentEncodingDeflate, ContentEncodingBrotli:
		return true
	}
	return false
}
