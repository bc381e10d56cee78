package weakref_test

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/go-quicktest/qt"

	"github.com/acutmore/proposal-keyby/internal/weakref"
)

func reclaimSoon(t *testing.T, done func() bool) {
	t.Helper()
	for i := 0; i < 5; i++ {
		if done() {
			return
		}
		runtime.GC()
		runtime.Gosched()
		time.Sleep(time.Millisecond)
	}
	if !done() {
		t.Fatal("value was not reclaimed in time")
	}
}

func TestMapSetGetDelete(t *testing.T) {
	var mu sync.Mutex
	m := weakref.NewMap[int](&mu, nil)

	a := new(int)
	b := new(int)

	m.Set(a, 1)
	m.Set(b, 2)
	qt.Assert(t, qt.Equals(m.Size(), 2))

	v, ok := m.Get(a)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 1))

	qt.Assert(t, qt.IsTrue(m.Delete(a)))
	qt.Assert(t, qt.IsFalse(m.Has(a)))
	qt.Assert(t, qt.Equals(m.Size(), 1))
	qt.Assert(t, qt.IsFalse(m.Delete(a)))
}

func TestMapLoadOrCreate(t *testing.T) {
	var mu sync.Mutex
	m := weakref.NewMap[string](&mu, nil)

	k := new(int)
	calls := 0
	create := func() string {
		calls++
		return "made"
	}

	v := m.LoadOrCreate(k, create)
	qt.Assert(t, qt.Equals(v, "made"))
	v = m.LoadOrCreate(k, create)
	qt.Assert(t, qt.Equals(v, "made"))
	qt.Assert(t, qt.Equals(calls, 1))
}

func TestMapOnEmptyFiresWhenLastKeyReclaimed(t *testing.T) {
	var mu sync.Mutex
	fired := make(chan struct{}, 1)
	m := weakref.NewMap[int](&mu, func() {
		fired <- struct{}{}
	})

	func() {
		k := new(int)
		mu.Lock()
		m.Set(k, 1)
		mu.Unlock()
	}()

	reclaimSoon(t, func() bool {
		select {
		case <-fired:
			return true
		default:
			return false
		}
	})

	mu.Lock()
	size := m.Size()
	mu.Unlock()
	qt.Assert(t, qt.Equals(size, 0))
}

func TestMapDeleteAddrIsIdempotent(t *testing.T) {
	var mu sync.Mutex
	m := weakref.NewMap[int](&mu, nil)
	qt.Assert(t, qt.IsFalse(m.DeleteAddr(0xdeadbeef)))
	qt.Assert(t, qt.IsFalse(m.DeleteAddr(0xdeadbeef)))
}

func TestAddrOfRejectsNonPointers(t *testing.T) {
	_, ok := weakref.AddrOf(42)
	qt.Assert(t, qt.IsFalse(ok))

	var nilPtr *int
	_, ok = weakref.AddrOf(nilPtr)
	qt.Assert(t, qt.IsFalse(ok))

	p := new(int)
	addr, ok := weakref.AddrOf(p)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(addr != 0))
}
