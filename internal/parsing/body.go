package parsing

import "strings"

// JoinBody rebuilds the body from the lines following the header block.
// Line terminators are not restored.
func JoinBody(rest []string) string {
	if len(rest) == 0 {
		return ""
	}
	return strings.Join(rest, "")
}
