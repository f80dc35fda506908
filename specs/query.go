package specs

import "strings"

// Query is one key[=value] pair of a query string. Values are kept as
// written, without percent-decoding.
type Query struct {
	Key   string
	Value string
}

// ParseQueryPair splits a pair on its first '='. A missing '=' is an error,
// an empty value is not.
func ParseQueryPair(pair string) (Query, error) {
	key, value, ok := strings.Cut(pair, "=")
	if !ok {
		return Query{}, ErrInvalidQuery
	}
	return Query{Key: key, Value: value}, nil
}

// ParseQuery splits a raw query string on '&'. Pairs that fail to parse
// are dropped and the rest are kept in order.
func ParseQuery(query string) []Query {
	if query == "" {
		return nil
	}

	var q []Query
	for _, pair := range strings.Split(query, "&") {
		parsed, err := ParseQueryPair(pair)
		if err != nil {
			continue
		}
		q = append(q, parsed)
	}
	return q
}

func (q Query) String() string {
	return q.Key + "=" + q.Value
}
