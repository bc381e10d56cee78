package trie

// reduceNested replaces h with its identity token if h is a composite
// key handle (recognized via the TokenOf seam keyby installs);
// otherwise h is returned unchanged.
func reduceNested(h any) any {
	if TokenOf == nil {
		return h
	}
	if t, ok := TokenOf(h); ok {
		return t
	}
	return h
}

// descendGC walks vs[index:] from n, consuming identity-bearing values
// as gcNode edges and skipping eternal ones (remembering that at least
// one was seen via seenEternal).
func (n *gcNode) descendGC(vs []any, index int, seenEternal bool) *Token {
	if index == len(vs) {
		if seenEternal {
			return n.transitionChild().descendEternal(vs, 0)
		}
		return n.getToken(n.examineSelf)
	}

	h := vs[index]
	if Classify(h) == CategoryEternal {
		return n.descendGC(vs, index+1, true)
	}

	h = reduceNested(h)
	if Classify(h) != CategoryIdentityBearing {
		panic(&InternalInvariantError{Detail: "reduced nested key is not identity-bearing"})
	}
	return n.childFor(h).descendGC(vs, index+1, seenEternal)
}

// descendEternal walks vs[index:] from n, consuming eternal values as
// strong edges and substituting the placeholder sentinel for any
// position that was identity-bearing (its actual edge was already
// consumed on the first, gcNode, pass).
func (n *eternalNode) descendEternal(vs []any, index int) *Token {
	if index == len(vs) {
		return n.getToken(n.examineSelf)
	}

	h := vs[index]
	var key any
	if Classify(h) == CategoryIdentityBearing {
		key = placeholder{}
	} else {
		key = h
	}
	return n.childFor(key).descendEternal(vs, index+1)
}
