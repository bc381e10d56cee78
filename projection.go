package keyby

import "github.com/acutmore/proposal-keyby/internal/trie"

// Projection is implemented by values that can declare their own
// canonical key to a structural container: a type embeds or
// implements CanonicalKey to say "look me up by this Key instead of by
// my own identity". Key implements Projection by returning itself.
type Projection interface {
	CanonicalKey() *Key
}

// Canonicalize returns v's canonical form for use as a map/set key: if
// v is identity-bearing and implements Projection, its CanonicalKey is
// returned; otherwise v is returned unchanged.
func Canonicalize(v any) any {
	if trie.Classify(v) != trie.CategoryIdentityBearing {
		return v
	}
	p, ok := v.(Projection)
	if !ok {
		return v
	}
	return p.CanonicalKey()
}
