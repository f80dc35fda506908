package rawhttp

const (
	// DefaultScheme is the protocol scheme of every freshly built Response.
	DefaultScheme = "HTTP"

	// DefaultVersion is the protocol version of every freshly built Response.
	DefaultVersion = "1.1"
)

var (
	directCrlf = "\r\n"
)
