package trie

import (
	"runtime"
	"weak"
)

// Token is an opaque, referentially-unique identity. Two tokens are
// equal iff they are the same allocation. The trailing byte field
// keeps Token a non-zero-size type: Go may hand out the same address
// for distinct zero-size allocations (runtime.zerobase), which would
// silently defeat the "referentially unique" guarantee this type
// exists to provide.
type Token struct {
	_ byte
}

// tokenHolder is embedded in both gcNode and eternalNode to share the
// "lazily mint and weakly track an identity token" behavior without an
// inheritance hierarchy.
type tokenHolder struct {
	tokenRef weak.Pointer[Token]
}

// alive reports whether a token has been minted and is still reachable.
func (h *tokenHolder) alive() bool {
	return h.tokenRef.Value() != nil
}

// getToken returns the holder's current token, minting one if absent or
// if the previous one has been reclaimed. examineSelf is invoked (with
// no other state captured by the cleanup closure, so the token itself
// is never resurrected) once the newly-minted token becomes
// unreachable.
func (h *tokenHolder) getToken(examineSelf func()) *Token {
	if t := h.tokenRef.Value(); t != nil {
		return t
	}
	t := new(Token)
	h.tokenRef = weak.Make(t)
	runtime.AddCleanup(t, func(f func()) { f() }, examineSelf)
	return t
}
