package analytics

// BoundedQueue keeps the most recent Cap entries. Pushing onto a full
// queue evicts the oldest entry.
type BoundedQueue[T any] struct {
	buf   []T
	head  int // index of the oldest entry
	count int
}

func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &BoundedQueue[T]{buf: make([]T, capacity)}
}

// BoundedQueueFrom loads items (oldest first), keeping only the newest capacity of them
func BoundedQueueFrom[T any](capacity int, items []T) *BoundedQueue[T] {
	q := NewBoundedQueue[T](capacity)
	for _, it := range items {
		q.Push(it)
	}
	return q
}

func (q *BoundedQueue[T]) Push(v T) {
	if q.count < len(q.buf) {
		q.buf[(q.head+q.count)%len(q.buf)] = v
		q.count++
		return
	}
	q.buf[q.head] = v
	q.head = (q.head + 1) % len(q.buf)
}

func (q *BoundedQueue[T]) Len() int { return q.count }

func (q *BoundedQueue[T]) Cap() int { return len(q.buf) }

// Items copies the entries out, oldest first
func (q *BoundedQueue[T]) Items() []T {
	out := make([]T, q.count)
	for i := 0; i < q.count; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}
