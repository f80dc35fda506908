package specs

var (
	directColonSpace = []byte(": ")
	directCrlf       = []byte("\r\n")
)
