package specs

import "strings"

// Path is a request target split into its bare path and query pairs.
type Path struct {
	Uri   string
	Query []Query
}

// ParsePath splits raw on the first '?'. The query part is parsed leniently,
// see ParseQuery.
func ParsePath(raw string) Path {
	uri, query, ok := strings.Cut(raw, "?")
	if !ok {
		return Path{Uri: raw}
	}
	return Path{
		Uri:   uri,
		Query: ParseQuery(query),
	}
}

// QueryValue returns the value of the first pair named key.
func (path Path) QueryValue(key string) (string, bool) {
	for _, q := range path.Query {
		if q.Key == key {
			return q.Value, true
		}
	}
	return "", false
}

func (path Path) String() string {
	if len(path.Query) == 0 {
		return path.Uri
	}
	var buf strings.Builder
	buf.WriteString(path.Uri)
	buf.WriteByte('?')
	for i, q := range path.Query {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(q.String())
	}
	return buf.String()
}
