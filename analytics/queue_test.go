package analytics

import (
	"reflect"
	"testing"
)

func TestBoundedQueueEvictsOldestFirst(t *testing.T) {
	q := NewBoundedQueue[int](3)
	for i := 1; i <= 5; i++ {
		q.Push(i)
	}
	if q.Len() != 3 || q.Cap() != 3 {
		t.Fatalf("len=%d cap=%d, want 3/3", q.Len(), q.Cap())
	}
	if got := q.Items(); !reflect.DeepEqual(got, []int{3, 4, 5}) {
		t.Fatalf("Items() = %v, want [3 4 5]", got)
	}
}

func TestBoundedQueueFrom(t *testing.T) {
	q := BoundedQueueFrom(2, []string{"a", "b", "c"})
	q.Push("d")
	if got := q.Items(); !reflect.DeepEqual(got, []string{"c", "d"}) {
		t.Fatalf("Items() = %v, want [c d]", got)
	}

	partial := BoundedQueueFrom(5, []string{"x"})
	if got := partial.Items(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("Items() = %v, want [x]", got)
	}
}

func TestBoundedQueueMinimumCapacity(t *testing.T) {
	q := NewBoundedQueue[int](0)
	q.Push(1)
	q.Push(2)
	if got := q.Items(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("Items() = %v, want [2]", got)
	}
}
