package specs

var (
	ErrInvalidRequest   = NewError(ErrorKindParser, "Invalid request format")
	ErrInvalidStartLine = NewError(ErrorKindParser, "Invalid start line format")
	ErrInvalidProtocol  = NewError(ErrorKindParser, "Invalid protocol format")
	ErrInvalidHeader    = NewError(ErrorKindParser, "Invalid header format")
	ErrInvalidQuery     = NewError(ErrorKindParser, "Invalid query string format")
	ErrInvalidMethod    = NewError(ErrorKindInvalidMethod, "Invalid or unsupported http method")
	ErrInvalidCode      = NewError(ErrorKindInvalidCode, "Invalid or unsupported status code")
)
