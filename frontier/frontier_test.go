package frontier

import (
	"math/rand"
	"testing"
)

func TestPriorityQueueOrder(t *testing.T) {
	pq := NewPriorityQueue[string](4)
	pq.Push("low", 5)
	pq.Push("medium", 3)
	pq.Push("high", 1)
	pq.Push("very high", 0)

	want := []string{"very high", "high", "medium", "low"}
	var got []string
	for !pq.IsEmpty() {
		item, ok := pq.Pop()
		if !ok {
			t.Fatal("Pop on non-empty queue reported empty")
		}
		got = append(got, item)
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestPriorityQueueNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pq := NewPriorityQueue[int](0)

	for i := 0; i < 500; i++ {
		pq.Push(i, float64(rng.Intn(50)))
	}
	// Interleave pops with more pushes
	last := -1.0
	for i := 0; i < 100; i++ {
		_, p, _ := pq.Peek()
		if _, ok := pq.Pop(); !ok {
			t.Fatal("Unexpected empty queue")
		}
		if p < last {
			t.Fatalf("Pop order decreased: %v after %v", p, last)
		}
		last = p
	}
	for i := 0; i < 100; i++ {
		pq.Push(i, last+float64(rng.Intn(20)))
	}

	for !pq.IsEmpty() {
		_, p, _ := pq.Peek()
		pq.Pop()
		if p < last {
			t.Fatalf("Pop order decreased: %v after %v", p, last)
		}
		last = p
	}
}

func TestPriorityQueueDuplicatesKept(t *testing.T) {
	pq := NewPriorityQueue[string](0)
	pq.Push("a", 4)
	pq.Push("a", 2)
	pq.Push("b", 3)

	if pq.Len() != 3 {
		t.Fatalf("Expected stale duplicates to be kept, len=%d", pq.Len())
	}
	first, _ := pq.Pop()
	second, _ := pq.Pop()
	third, _ := pq.Pop()
	if first != "a" || second != "b" || third != "a" {
		t.Errorf("Unexpected order %s %s %s", first, second, third)
	}
}

func TestPriorityQueueEmpty(t *testing.T) {
	pq := NewPriorityQueue[int](0)
	if _, ok := pq.Pop(); ok {
		t.Error("Pop on empty queue should report false")
	}
	if _, _, ok := pq.Peek(); ok {
		t.Error("Peek on empty queue should report false")
	}

	pq.Push(1, 1)
	pq.Reset()
	if !pq.IsEmpty() {
		t.Error("Reset did not empty the queue")
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int](0)
	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}
	if head, _ := q.Peek(); head != 0 {
		t.Errorf("Expected head 0, got %d", head)
	}
	for i := 0; i < 10; i++ {
		v, ok := q.Dequeue()
		if !ok || v != i {
			t.Fatalf("Expected %d, got %d (ok=%v)", i, v, ok)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue on empty queue should report false")
	}
}

func TestQueueCompaction(t *testing.T) {
	q := NewQueue[int](0)
	next := 0
	expect := 0

	// Steady state: enqueue two, dequeue two; without compaction the store grows forever
	for round := 0; round < 1000; round++ {
		q.Enqueue(next)
		next++
		q.Enqueue(next)
		next++
		for i := 0; i < 2; i++ {
			v, ok := q.Dequeue()
			if !ok || v != expect {
				t.Fatalf("round %d: expected %d, got %d (ok=%v)", round, expect, v, ok)
			}
			expect++
		}
	}

	if q.backing() > 2*compactThreshold+2 {
		t.Errorf("Backing store not compacted: %d slots", q.backing())
	}
	if !q.IsEmpty() || q.Len() != 0 {
		t.Errorf("Expected empty queue, len=%d", q.Len())
	}
}

func TestQueueCompactionPreservesOrder(t *testing.T) {
	q := NewQueue[int](0)
	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 60; i++ {
		q.Dequeue()
	}
	// Compaction happened somewhere past the threshold
	if q.backing() == 100 {
		t.Error("Expected compaction after consuming more than half")
	}
	for i := 60; i < 100; i++ {
		v, _ := q.Dequeue()
		if v != i {
			t.Fatalf("Expected %d, got %d", i, v)
		}
	}
}
