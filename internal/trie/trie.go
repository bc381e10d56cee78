// Package trie implements a process-wide interning engine: it assigns
// every distinct composite-key sequence a unique, weakly-held identity
// Token, such that token equality is exactly structural equality of the
// sequence.
package trie

import "sync"

// mu guards every mutation of the trie: descent, token minting, and
// node detachment. It is also acquired (not held on entry) by the two
// asynchronous reclamation paths — weakref.Map's finalizer callback and
// a token's runtime.AddCleanup callback — since both run on a runtime
// goroutine concurrently with any caller.
var mu sync.Mutex

var root = newGCNode(nil, nil)

// TokenOf is set once by package keyby at init time so this package can
// recognize a *keyby.Key and reduce it to its token without an import
// cycle (keyby needs trie.Token; trie must not import keyby).
var TokenOf func(v any) (*Token, bool)

// MakeToken runs the interning descent for vs and returns the resulting
// token: the same token every time, for as long as some *keyby.Key
// built from an equal sequence keeps it reachable.
func MakeToken(vs []any) *Token {
	mu.Lock()
	defer mu.Unlock()
	return root.descendGC(vs, 0, false)
}
