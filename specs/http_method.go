package specs

type HttpMethod string

// HttpMethod constants represent the request methods understood by the parser.
// Tokens are matched exactly, so lowercase or padded spellings are rejected.
const (
	HttpMethodHead   HttpMethod = "HEAD"
	HttpMethodGet    HttpMethod = "GET"
	HttpMethodPost   HttpMethod = "POST"
	HttpMethodPut    HttpMethod = "PUT"
	HttpMethodDelete HttpMethod = "DELETE"
	HttpMethodPatch  HttpMethod = "PATCH"
)

// ParseMethod resolves a start line method token.
func ParseMethod(token string) (HttpMethod, error) {
	method := HttpMethod(token)
	if !method.IsValid() {
		return "", ErrInvalidMethod
	}
	return method, nil
}

// IsValid checks if the HttpMethod is one of the supported methods.
func (method HttpMethod) IsValid() bool {
	switch method {
	case HttpMethodHead, HttpMethodGet, HttpMethodPost,
		HttpMethodPut, HttpMethodDelete, HttpMethodPatch:
		return true
	}
	return false
}

// IsPostable checks if the HttpMethod is suitable for sending a request body.
func (method HttpMethod) IsPostable() bool {
	return method == HttpMethodPost || method == HttpMethodPut ||
		method == HttpMethodDelete || method == HttpMethodPatch
}

func (method HttpMethod) String() string {
	return string(method)
}
