// Package record implements frozen Record/Tuple builders, in the spirit
// of the acutmore/proposal-keyby JS proposal's Record/Tuple: aggregates
// that derive and cache a composite key over their contents, so two
// Records (or two Tuples) built from equal contents compare equal under
// keyby.Equal even though they are distinct allocations.
package record

import (
	"sort"
	"sync"

	keyby "github.com/acutmore/proposal-keyby"
)

// namespaceMarker distinguishes Record's composite keys from Tuple's
// (and from any other future frozen-aggregate kind): a pointer, so it
// participates in the trie as an ordinary identity-bearing value, never
// equal to any other value.
type namespaceMarker struct{}

var recordNamespace = &namespaceMarker{}

// Field is one key/value pair of a Record. Key must be a string or a
// Symbol.
type Field struct {
	Key   any
	Value any
}

// Record is an immutable, frozen mapping from field keys to values.
type Record struct {
	fields  []Field
	keyOnce func() *keyby.Key
}

// New builds a Record from a plain map of string-keyed fields. Field
// order is not significant to Record's identity: two Records with the
// same keys and values, under keyby.Canonicalize, are equal regardless
// of map iteration order.
func New(fields map[string]any) *Record {
	fs := make([]Field, 0, len(fields))
	for k, v := range fields {
		fs = append(fs, Field{Key: k, Value: v})
	}
	return newRecord(fs)
}

// NewWithSymbols builds a Record whose field keys may be Symbols as
// well as strings.
func NewWithSymbols(fields ...Field) *Record {
	return newRecord(append([]Field(nil), fields...))
}

func newRecord(fields []Field) *Record {
	sort.Slice(fields, func(i, j int) bool { return lessKey(fields[i].Key, fields[j].Key) })
	r := &Record{fields: fields}
	r.keyOnce = sync.OnceValue(func() *keyby.Key {
		vs := make([]any, 0, 1+2*len(fields))
		vs = append(vs, recordNamespace)
		for _, f := range fields {
			vs = append(vs, f.Key, keyby.Canonicalize(f.Value))
		}
		return keyby.Must(vs...)
	})
	return r
}

// Get returns the value stored under key and reports whether it was
// present.
func (r *Record) Get(key any) (any, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Fields returns r's fields in their canonical (sorted) order.
func (r *Record) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// CanonicalKey implements keyby.Projection: the composite key is
// computed once, on first access, and cached thereafter.
func (r *Record) CanonicalKey() *keyby.Key { return r.keyOnce() }
