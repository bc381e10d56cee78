package record

import keyby "github.com/acutmore/proposal-keyby"

// keyClass orders a field key's category: symbols sort before strings.
func keyClass(k any) int {
	switch k.(type) {
	case Symbol:
		return 0
	case string:
		return 1
	default:
		panic(&keyby.MisuseError{
			Op:     "record.New",
			Reason: "field key must be a string or record.Symbol",
		})
	}
}

// lessKey puts fields into the canonical order a Record hashes its
// contents in: symbols before strings; registered symbols before
// non-registered ones, ordered by registry name; non-registered symbols
// ordered by first-seen sequence; strings ordered lexically.
func lessKey(a, b any) bool {
	ca, cb := keyClass(a), keyClass(b)
	if ca != cb {
		return ca < cb
	}
	if ca == 0 {
		sa, sb := a.(Symbol), b.(Symbol)
		if sa.registered != sb.registered {
			return sa.registered
		}
		if sa.registered {
			return sa.name < sb.name
		}
		return sa.seq < sb.seq
	}
	return a.(string) < b.(string)
}
