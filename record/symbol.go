package record

import "sync/atomic"

// Symbol is this module's analogue of JS's registered/non-registered
// symbol: a value usable as a Record field key that, unlike a plain
// string, can be either shared by name (SymbolFor) or guaranteed unique
// per call (NewSymbol).
//
// Symbol is comparable and eternal (it cannot be held weakly), so it
// can be used directly as a composite-key component or trie edge.
type Symbol struct {
	name       string
	registered bool
	seq        uint64
}

var symbolSeq atomic.Uint64

// SymbolFor returns the registered symbol for name. Every call with the
// same name returns an equal Symbol.
func SymbolFor(name string) Symbol {
	return Symbol{name: name, registered: true}
}

// NewSymbol returns a fresh, non-registered symbol tagged with name for
// display purposes only: it never compares equal to any other Symbol,
// including one created from the same name.
func NewSymbol(name string) Symbol {
	return Symbol{name: name, registered: false, seq: symbolSeq.Add(1)}
}

// Registered reports whether s was created by SymbolFor.
func (s Symbol) Registered() bool { return s.registered }

// String returns s's display name. It does not participate in
// equality for non-registered symbols.
func (s Symbol) String() string { return s.name }
