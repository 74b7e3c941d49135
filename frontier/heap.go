// Package frontier provides the open-set containers used by the search variants.
//
// PriorityQueue is insert-only: there is no decrease-key. A caller that improves
// a score pushes the item again, and must skip stale duplicates when they are
// popped (typically with its own closed-set check).
package frontier

type heapEntry[T any] struct {
	item     T
	priority float64
}

// PriorityQueue is a binary min-heap keyed by priority
// Ties are resolved by sift order and are not stable
type PriorityQueue[T any] struct {
	entries []heapEntry[T]
}

// NewPriorityQueue creates an empty queue with the given capacity hint
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{entries: make([]heapEntry[T], 0, capacity)}
}

func (q *PriorityQueue[T]) Len() int      { return len(q.entries) }
func (q *PriorityQueue[T]) IsEmpty() bool { return len(q.entries) == 0 }

// Reset empties the queue, keeping the backing buffer
func (q *PriorityQueue[T]) Reset() {
	clear(q.entries)
	q.entries = q.entries[:0]
}

// Push appends and sifts up
func (q *PriorityQueue[T]) Push(item T, priority float64) {
	q.entries = append(q.entries, heapEntry[T]{item: item, priority: priority})
	h := q.entries
	i := len(h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h[parent].priority <= h[i].priority {
			break
		}
		h[parent], h[i] = h[i], h[parent]
		i = parent
	}
}

// Pop removes the minimum-priority item, false if empty
func (q *PriorityQueue[T]) Pop() (T, bool) {
	var zero T
	n := len(q.entries)
	if n == 0 {
		return zero, false
	}
	h := q.entries
	top := h[0].item
	h[0] = h[n-1]
	h[n-1] = heapEntry[T]{}
	h = h[:n-1]
	q.entries = h

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(h) && h[right].priority < h[left].priority {
			smallest = right
		}
		if h[i].priority <= h[smallest].priority {
			break
		}
		h[i], h[smallest] = h[smallest], h[i]
		i = smallest
	}
	return top, true
}

// Peek returns the minimum item and its priority without removing it
func (q *PriorityQueue[T]) Peek() (T, float64, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, 0, false
	}
	return q.entries[0].item, q.entries[0].priority, true
}
