package record_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	keyby "github.com/acutmore/proposal-keyby"
	"github.com/acutmore/proposal-keyby/container"
	"github.com/acutmore/proposal-keyby/record"
)

// A Record's identity doesn't depend on the order its fields were built
// in.
func TestRecordFieldOrderDoesNotAffectIdentity(t *testing.T) {
	r1 := record.New(map[string]any{"x": 1, "y": 1})
	r2 := record.New(map[string]any{"y": 1, "x": 1})

	qt.Assert(t, qt.IsTrue(keyby.Equal(r1.CanonicalKey(), r2.CanonicalKey())))
}

// A container keyed by a Record's canonical key finds the stored value
// from any other Record with equal fields, regardless of field order.
func TestContainerLookupByRecordKey(t *testing.T) {
	m := container.NewMap[*record.Record, int](
		container.KeyBy(func(r *record.Record) any { return r.CanonicalKey() }),
	)
	r1 := record.New(map[string]any{"x": 1, "y": 1})
	m.Set(r1, 42)

	r2 := record.New(map[string]any{"y": 1, "x": 1})
	got, ok := m.Get(r2)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, 42))
}

func TestRecordDifferentValuesNotEqual(t *testing.T) {
	r1 := record.New(map[string]any{"x": 1})
	r2 := record.New(map[string]any{"x": 2})
	qt.Assert(t, qt.IsFalse(keyby.Equal(r1.CanonicalKey(), r2.CanonicalKey())))
}

func TestRecordAndTupleNamespacesDontCollide(t *testing.T) {
	r := record.NewWithSymbols(record.Field{Key: "a", Value: 1})
	tup := record.NewTuple("a", 1)
	qt.Assert(t, qt.IsFalse(keyby.Equal(r.CanonicalKey(), tup.CanonicalKey())))
}

func TestSymbolEquality(t *testing.T) {
	a := record.SymbolFor("shared")
	b := record.SymbolFor("shared")
	qt.Assert(t, qt.Equals(a, b))

	c := record.NewSymbol("unique")
	d := record.NewSymbol("unique")
	qt.Assert(t, qt.IsFalse(c == d))
}

func TestRecordFieldOrderSymbolsBeforeStrings(t *testing.T) {
	sym := record.SymbolFor("s")
	r := record.NewWithSymbols(
		record.Field{Key: "str", Value: 1},
		record.Field{Key: sym, Value: 2},
	)
	fields := r.Fields()
	qt.Assert(t, qt.Equals(len(fields), 2))
	qt.Assert(t, qt.Equals(fields[0].Key, any(sym)))
	qt.Assert(t, qt.Equals(fields[1].Key, any("str")))
}

func TestTupleBasics(t *testing.T) {
	t1 := record.NewTuple(1, "a")
	t2 := record.NewTuple(1, "a")
	t3 := record.NewTuple("a", 1)

	qt.Assert(t, qt.IsTrue(keyby.Equal(t1.CanonicalKey(), t2.CanonicalKey())))
	qt.Assert(t, qt.IsFalse(keyby.Equal(t1.CanonicalKey(), t3.CanonicalKey())))
	qt.Assert(t, qt.Equals(t1.Len(), 2))
	qt.Assert(t, qt.Equals(t1.At(0), any(1)))
}
