package trie

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestClassify(t *testing.T) {
	qt.Assert(t, qt.Equals(Classify(nil), CategoryEternal))
	qt.Assert(t, qt.Equals(Classify(42), CategoryEternal))
	qt.Assert(t, qt.Equals(Classify("s"), CategoryEternal))
	qt.Assert(t, qt.Equals(Classify(true), CategoryEternal))

	var nilPtr *int
	qt.Assert(t, qt.Equals(Classify(nilPtr), CategoryEternal))

	qt.Assert(t, qt.Equals(Classify(new(int)), CategoryIdentityBearing))
	qt.Assert(t, qt.Equals(Classify(&struct{}{}), CategoryIdentityBearing))
}

func TestKeyable(t *testing.T) {
	qt.Assert(t, qt.IsTrue(Keyable(nil)))
	qt.Assert(t, qt.IsTrue(Keyable(42)))
	qt.Assert(t, qt.IsTrue(Keyable("s")))
	qt.Assert(t, qt.IsTrue(Keyable(struct{ X int }{1})))
	qt.Assert(t, qt.IsTrue(Keyable(new(int))))

	qt.Assert(t, qt.IsFalse(Keyable([]int{1})))
	qt.Assert(t, qt.IsFalse(Keyable(map[string]int{})))
	qt.Assert(t, qt.IsFalse(Keyable(func() {})))
}
