package ordmap

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIteratorEmptyMap(t *testing.T) {
	m := New[int, int]()
	it := m.Begin()
	if !it.Equal(m.End()) || !it.IsEnd() {
		t.Fatalf("Begin() of empty map must equal End()")
	}
	if err := it.Next(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Next on end: expected ErrInvalidIterator, got %v", err)
	}
	if err := it.Prev(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Prev on end of empty map: expected ErrInvalidIterator, got %v", err)
	}
	if !it.IsEnd() {
		t.Fatalf("failed move must leave iterator unchanged")
	}
	if _, err := it.Key(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("dereference of end: expected ErrInvalidIterator, got %v", err)
	}
}

func TestIteratorBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := fill(t, 2, 4, 6)
	it := m.Begin()
	if err := it.Prev(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Prev on Begin(): expected ErrInvalidIterator, got %v", err)
	}
	if k, err := it.Key(); err != nil || k != 2 {
		t.Fatalf("iterator moved by failed Prev: %d, %v", k, err)
	}
	end := m.End()
	if err := end.Next(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Next on End(): expected ErrInvalidIterator, got %v", err)
	}
	if err := end.Prev(); err != nil {
		t.Fatalf("Prev on End() of non-empty map failed: %v", err)
	}
	if k, _ := end.Key(); k != 6 {
		t.Fatalf("Prev from End() must reach the last element, got %d", k)
	}
	var backward []int
	for it := m.End(); it.Prev() == nil; {
		k, _ := it.Key()
		backward = append(backward, k)
	}
	if len(backward) != 3 || backward[0] != 6 || backward[2] != 2 {
		t.Fatalf("unexpected backward traversal %v", backward)
	}
}

func TestIteratorZeroValue(t *testing.T) {
	var it Iterator[string, int]
	var cit ConstIterator[string, int]
	if it.Valid() || it.IsEnd() || cit.Valid() {
		t.Fatalf("zero iterators must be invalid")
	}
	for _, err := range []error{it.Next(), it.Prev(), cit.Next(), cit.Prev(), it.SetValue(1)} {
		if !errors.Is(err, ErrInvalidIterator) {
			t.Fatalf("expected ErrInvalidIterator, got %v", err)
		}
	}
	if _, err := cit.Value(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator, got %v", err)
	}
	if !it.Equal(cit) || !it.Equal(nil) {
		t.Fatalf("zero iterators must compare equal")
	}
}

func TestIteratorMutation(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	it := m.Find("b")
	if err := it.SetValue(20); err != nil {
		t.Fatal(err)
	}
	ref, err := it.ValueRef()
	if err != nil {
		t.Fatal(err)
	}
	*ref++
	p, err := it.Pair()
	if err != nil || p.First() != "b" || p.Second != 21 {
		t.Fatalf("unexpected pair %v (%v)", p, err)
	}
	if v, _ := m.At("b"); v != 21 {
		t.Fatalf("mutation through iterator lost, b=%d", v)
	}
	c := it.Const()
	if !c.Equal(it) || !it.Equal(c) {
		t.Fatalf("const conversion must keep the position")
	}
	if err := c.Prev(); err != nil {
		t.Fatal(err)
	}
	if k, _ := c.Key(); k != "a" || it.Equal(c) {
		t.Fatalf("const iterator must move independently, at %q", k)
	}
}

func TestIteratorSurvivesOtherErase(t *testing.T) {
	m := fill(t, 1, 2, 3, 4, 5)
	keep := m.Find(4)
	for _, k := range []int{1, 2, 3, 5} {
		if err := m.Erase(m.Find(k)); err != nil {
			t.Fatal(err)
		}
	}
	if k, err := keep.Key(); err != nil || k != 4 {
		t.Fatalf("iterator to surviving element broken: %d, %v", k, err)
	}
	if err := keep.Next(); err != nil || !keep.IsEnd() {
		t.Fatalf("expected end after the only element, err=%v", err)
	}
}

func TestIteratorLoopStopsWhenInvalidated(t *testing.T) {
	m := fill(t, 1, 2, 3)
	steps := 0
	for it := m.Begin(); it.Valid() && !it.IsEnd(); {
		steps++
		if steps > m.Size()+3 {
			t.Fatalf("loop does not terminate")
		}
		if err := m.Erase(it); err != nil {
			t.Fatal(err)
		}
		if err := it.Next(); err != nil {
			break
		}
	}
	if steps != 1 || m.Size() != 2 {
		t.Fatalf("expected loop to stop after first erase, steps=%d size=%d", steps, m.Size())
	}
}

func TestEraseWhileIterating(t *testing.T) {
	m := fill(t, 1, 2, 3, 4, 5, 6)
	for it := m.Begin(); it.Valid() && !it.IsEnd(); {
		pos := it
		if err := it.Next(); err != nil {
			t.Fatal(err)
		}
		if k, _ := pos.Key(); k%2 == 0 {
			if err := m.Erase(pos); err != nil {
				t.Fatal(err)
			}
		}
	}
	if got := m.Keys(); len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 5 {
		t.Fatalf("unexpected keys after erasing even keys: %v", got)
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
}
