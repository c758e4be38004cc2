package input

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrQueueFull  = errors.New("KeyQueue is full")
	ErrQueueEmpty = errors.New("KeyQueue is empty")
)

// KeyQueueItem records a key event seen by an event reader.
type KeyQueueItem struct {
	Button Buttons
	At     time.Time
}

// KeyQueue hands key events from an event goroutine to the frame loop.
type KeyQueue struct {
	mu       sync.Mutex
	capacity int
	q        []KeyQueueItem
}

// Insert inserts the item onto the end of the queue
func (q *KeyQueue) Insert(item KeyQueueItem) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.q) < q.capacity {
		q.q = append(q.q, item)
		return nil
	}
	return ErrQueueFull
}

// Remove removes the oldest element from the queue
func (q *KeyQueue) Remove() (KeyQueueItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.q) > 0 {
		item := q.q[0]
		q.q = q.q[1:]
		return item, nil
	}
	return KeyQueueItem{}, ErrQueueEmpty
}

// Drain removes every queued item, oldest first
func (q *KeyQueue) Drain() []KeyQueueItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.q
	q.q = make([]KeyQueueItem, 0, q.capacity)
	return items
}

// Len returns the number of queued items
func (q *KeyQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.q)
}

// NewKeyQueue creates an empty queue with desired capacity
func NewKeyQueue(capacity int) *KeyQueue {
	return &KeyQueue{
		capacity: capacity,
		q:        make([]KeyQueueItem, 0, capacity),
	}
}
