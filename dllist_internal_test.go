package dllist

import (
	"testing"

	"github.com/sirkon/deepequal"
)

// checkInvariants проверка согласованности головы, хвоста, длины и ссылок в обе стороны.
func checkInvariants[T comparable](t *testing.T, l *DLList[T]) {
	t.Helper()

	switch l.size {
	case 0:
		if l.head != nil || l.tail != nil {
			t.Fatalf("empty list must have no head and tail, got head=%p tail=%p", l.head, l.tail)
		}
		return
	case 1:
		if l.head == nil || l.head != l.tail {
			t.Fatal("single node list must have head equal to tail")
		}
	}

	if l.head.prev != nil {
		t.Fatal("head must have no previous node")
	}
	if l.tail.next != nil {
		t.Fatal("tail must have no next node")
	}

	var count int
	var last *Node[T]
	for n := l.head; n != nil; n = n.next {
		if n.list != l {
			t.Fatalf("node %d is not owned by the list", count)
		}
		if n.prev != last {
			t.Fatalf("node %d has broken previous link", count)
		}
		last = n
		count++
		if count > l.size {
			t.Fatalf("forward walk is longer than size %d", l.size)
		}
	}
	if count != l.size {
		t.Fatalf("forward walk counted %d nodes, size is %d", count, l.size)
	}
	if last != l.tail {
		t.Fatal("forward walk did not end at the tail")
	}

	count = 0
	for n := l.tail; n != nil; n = n.prev {
		count++
	}
	if count != l.size {
		t.Fatalf("reverse walk counted %d nodes, size is %d", count, l.size)
	}
}

func TestUnlinkInterior(t *testing.T) {
	l := New[int]()
	l.AddNodesTail(1, 2, 3)
	mid := l.head.next

	l.unlink(mid)
	checkInvariants(t, l)
	deepequal.SideBySide(t, "values", []int{1, 3}, l.Values())

	if mid.list != nil || mid.next != nil || mid.prev != nil {
		t.Error("unlinked node must be detached")
	}
}

func TestInvariantsAcrossOperations(t *testing.T) {
	l := NewWithOptions[int](Options{Logger: NopLogger{}})
	checkInvariants(t, l)

	steps := []struct {
		name string
		op   func()
	}{
		{"add-head-empty", func() { l.AddHead(2) }},
		{"add-tail", func() { l.AddTail(4) }},
		{"add-nodes-head", func() { l.AddNodesHead(0, 1) }},
		{"add-nodes-tail", func() { l.AddNodesTail(5, 6) }},
		{"insert-at-middle", func() { _, _ = l.InsertAt(3, 3) }},
		{"insert-after-tail", func() { _, _ = l.InsertAfter(l.tail, 7) }},
		{"insert-before-head", func() { _, _ = l.InsertBefore(l.head, -1) }},
		{"remove-at-middle", func() { l.RemoveAt(4) }},
		{"remove-at-head", func() { l.RemoveAt(0) }},
		{"remove-at-tail", func() { l.RemoveAt(l.size - 1) }},
		{"remove-at-out-of-range", func() { l.RemoveAt(l.size) }},
		{"remove-head", func() { l.RemoveHead() }},
		{"remove-tail", func() { l.RemoveTail() }},
		{"remove-value", func() { l.Remove(4) }},
		{"assign-self", func() { l.Assign(l) }},
		{"clear", func() { l.Clear() }},
		{"remove-head-empty", func() { l.RemoveHead() }},
	}

	for _, s := range steps {
		s.op()
		t.Run(s.name, func(t *testing.T) {
			checkInvariants(t, l)
		})
	}
}

func TestRemoveAdjacentMatches(t *testing.T) {
	l := New[int]()
	l.AddNodesTail(7, 7, 1, 7, 7, 2, 7)

	if removed := l.Remove(7); removed != 5 {
		t.Errorf("expected 5 nodes removed, got %d", removed)
	}
	checkInvariants(t, l)
	deepequal.SideBySide(t, "values", []int{1, 2}, l.Values())

	if removed := l.Remove(1); removed != 1 {
		t.Errorf("expected 1 node removed, got %d", removed)
	}
	if removed := l.Remove(2); removed != 1 {
		t.Errorf("expected 1 node removed, got %d", removed)
	}
	checkInvariants(t, l)
}

func TestAssignDetachesOldNodes(t *testing.T) {
	a := New[string]()
	a.AddNodesTail("a", "b")
	old := a.Head()

	b := New[string]()
	b.AddNodesTail("x", "y", "z")

	a.Assign(b)
	checkInvariants(t, a)
	checkInvariants(t, b)

	if old.list != nil {
		t.Error("nodes of the replaced chain must be detached")
	}
	for an, bn := a.head, b.head; an != nil; an, bn = an.next, bn.next {
		if an == bn {
			t.Fatal("assigned list must not share nodes with the source")
		}
	}

	a.Assign(nil)
	checkInvariants(t, a)
	if a.NodeCount() != 0 {
		t.Errorf("assigning nil must empty the list, got %d nodes", a.NodeCount())
	}
}

func TestZeroValue(t *testing.T) {
	var l DLList[int]
	l.AddTail(1)
	checkInvariants(t, &l)

	if l.RemoveAt(3) {
		t.Error("out of range removal must fail")
	}
	checkInvariants(t, &l)
}
