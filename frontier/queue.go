package frontier

// Compaction kicks in once the consumed prefix is past this many entries
// and covers more than half of the backing store
const compactThreshold = 32

// Queue is a FIFO with an advancing head index and lazy compaction
type Queue[T any] struct {
	items []T
	head  int
}

func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

func (q *Queue[T]) Len() int      { return len(q.items) - q.head }
func (q *Queue[T]) IsEmpty() bool { return q.head >= len(q.items) }

func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes the oldest item, false if empty
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	if q.head > compactThreshold && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return item, true
}

// Peek returns the oldest item without removing it
func (q *Queue[T]) Peek() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

func (q *Queue[T]) Reset() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}

// backing reports the stored slot count including the consumed prefix
func (q *Queue[T]) backing() int {
	return len(q.items)
}
