package trie

import "github.com/acutmore/proposal-keyby/internal/weakref"

// placeholder is the zero-size sentinel substituted for
// identity-bearing values on the eternal (second) pass of a descent:
// the actual identity was already consumed as a gcNode edge on the
// first pass, so only the position matters here. Every value of this
// type compares equal to every other, which is exactly what's needed:
// all identity-bearing slots collapse onto the one sentinel edge.
type placeholder struct{}

// gcNode is a trie position reached purely by identity-bearing values.
// Its children are held weakly; it lazily grows at most one strong
// child, the transition into the eternal sub-trie.
type gcNode struct {
	tokenHolder
	children   *weakref.Map[*gcNode]
	transition *eternalNode

	detached   bool
	removeSelf func() // nil for the root: the root is never purged
	parent     func() // parent's examineSelf; nil for the root
}

// eternalNode is a trie position reached by eternal values (and, on the
// second pass, by placeholder sentinels standing in for identity-bearing
// positions). Its children are held strongly: eternal values compare
// structurally, so there is nothing to reclaim.
type eternalNode struct {
	tokenHolder
	children map[any]*eternalNode

	detached   bool
	removeSelf func()
	parent     func()
}

func newGCNode(removeSelf func(), parent func()) *gcNode {
	n := &gcNode{removeSelf: removeSelf, parent: parent}
	n.children = weakref.NewMap[*gcNode](&mu, n.examineSelf)
	return n
}

func newEternalNode(removeSelf func(), parent func()) *eternalNode {
	return &eternalNode{
		children:   make(map[any]*eternalNode),
		removeSelf: removeSelf,
		parent:     parent,
	}
}

// childFor returns the gcNode reached from n via the identity-bearing
// value h, creating it if absent.
func (n *gcNode) childFor(h any) *gcNode {
	return n.children.LoadOrCreate(h, func() *gcNode {
		addr := addrOfEdge(h) // computed once now: the closure below must never close over h itself
		return newGCNode(
			func() { n.children.DeleteAddr(addr) },
			n.examineSelfLocked,
		)
	})
}

// transitionChild returns n's eternal sub-trie root, creating it if
// this is the first eternal value seen along this path.
func (n *gcNode) transitionChild() *eternalNode {
	if n.transition == nil {
		n.transition = newEternalNode(func() { n.transition = nil }, n.examineSelfLocked)
	}
	return n.transition
}

// childFor returns the eternalNode reached from n via the canonical
// eternal value key, creating it if absent.
func (n *eternalNode) childFor(key any) *eternalNode {
	if c, ok := n.children[key]; ok {
		return c
	}
	c := newEternalNode(func() { delete(n.children, key) }, n.examineSelfLocked)
	n.children[key] = c
	return c
}

// examineSelf is the entry point used by callbacks that fire on a
// runtime goroutine without mu held: a weakref.Map's onEmpty, or a
// token's reclamation cleanup. It acquires mu once and runs the walk;
// the walk itself recurses into parents via examineSelfLocked, never
// re-locking.
func (n *gcNode) examineSelf() {
	mu.Lock()
	defer mu.Unlock()
	n.examineSelfLocked()
}

// examineSelfLocked implements the upward reclamation walk: a node that
// has no children and no live token detaches itself from its parent and
// asks the parent to do the same check. Caller must hold mu.
func (n *gcNode) examineSelfLocked() {
	if n.detached {
		return
	}
	if n.children.Size() > 0 || n.transition != nil || n.alive() {
		return
	}
	if n.removeSelf == nil {
		return // root
	}
	n.detached = true
	n.removeSelf()
	if n.parent != nil {
		n.parent()
	}
}

func (n *eternalNode) examineSelf() {
	mu.Lock()
	defer mu.Unlock()
	n.examineSelfLocked()
}

func (n *eternalNode) examineSelfLocked() {
	if n.detached {
		return
	}
	if len(n.children) > 0 || n.alive() {
		return
	}
	if n.removeSelf == nil {
		return
	}
	n.detached = true
	n.removeSelf()
	if n.parent != nil {
		n.parent()
	}
}

// addrOfEdge computes an edge's weak-map address once at child-creation
// time, so the child's detach closure never needs to hold a reference
// to the edge key itself across a GC boundary.
func addrOfEdge(h any) uintptr {
	addr, ok := weakref.AddrOf(h)
	if !ok {
		panic(&InternalInvariantError{Detail: "gcNode edge key is not a pointer"})
	}
	return addr
}
