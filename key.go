package keyby

import (
	"fmt"

	"github.com/acutmore/proposal-keyby/internal/trie"
)

// Key is an opaque, user-visible handle over an ordered sequence of
// values, compared structurally: two keys built from equal sequences
// compare equal under Equal even though they are distinct allocations.
// Its only state is a strong reference to the sequence's identity
// token; there is nothing else to observe about it.
//
// The brand check a dynamically-typed host needs (is this object
// really a composite key?) has no work to do here: *Key is an
// unexported-field struct type, so Go's own type system is the brand
// check.
type Key struct {
	token *trie.Token
}

func init() {
	trie.TokenOf = func(v any) (*trie.Token, bool) {
		k, ok := v.(*Key)
		if !ok {
			return nil, false
		}
		return k.token, true
	}
}

// New builds a Key from vs. It fails with a *MisuseError if any element
// is neither a non-nil pointer nor a comparable value: slices, maps, and
// funcs are rejected rather than silently coerced.
func New(vs ...any) (*Key, error) {
	for i, v := range vs {
		if !trie.Keyable(v) {
			return nil, &MisuseError{
				Op:     "keyby.New",
				Reason: fmt.Sprintf("argument %d of type %T is neither comparable nor a pointer", i, v),
			}
		}
	}
	return &Key{token: trie.MakeToken(vs)}, nil
}

// Must is New, panicking on error. It exists for the common case where
// the caller already knows its arguments are keyable (literals,
// pointers it allocated itself).
func Must(vs ...any) *Key {
	k, err := New(vs...)
	if err != nil {
		panic(err)
	}
	return k
}

// Equal reports whether a and b were built from structurally equal
// sequences. Nil keys are equal only to other nil keys.
func Equal(a, b *Key) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.token == b.token
}

// IsKey reports whether v is a *Key. It is a one-line type switch, not
// a runtime tag comparison — see the Key doc comment.
func IsKey(v any) bool {
	_, ok := v.(*Key)
	return ok
}

// Identity returns k's underlying identity token as an opaque
// comparable value: two keys built from equal sequences yield == values
// from Identity, which is what lets a container façade (package
// container) use a *Key's identity directly as a plain Go map key,
// without re-deriving equality itself. The concrete type behind the
// returned value is deliberately not exposed.
func Identity(k *Key) any {
	return k.token
}

// CanonicalKey implements Projection by returning k itself.
func (k *Key) CanonicalKey() *Key { return k }

// String returns a stable tag; Key has no other observable state.
func (k *Key) String() string { return "keyby.Key" }
