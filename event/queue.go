package event

import (
	"sync/atomic"

	"github.com/lixenwraith/fruit-fighter/parameter"
)

// EventQueue is a bounded MPSC ring of game commands
// Push is lock-free for any number of producers (clocks, gesture source, UI)
// Consume has exactly one caller, Game.Update
// A full queue rejects the newest command; queued commands are never overwritten
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // Slot fully written
	head      atomic.Uint64                         // Next slot to read
	tail      atomic.Uint64                         // Next slot to claim
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims a slot and publishes ev into it
// Returns false when the queue is full
func (q *EventQueue) Push(ev GameEvent) bool {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail-head >= parameter.EventQueueSize {
			q.dropped.Add(1)
			return false
		}
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}
		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // after the write
		return true
	}
}

// Consume appends every published command to dst in FIFO order
// Stops at the first claimed-but-unpublished slot; it is picked up next call
func (q *EventQueue) Consume(dst []GameEvent) []GameEvent {
	head := q.head.Load()
	tail := q.tail.Load()

	for ; head < tail; head++ {
		idx := head & parameter.EventBufferMask
		if !q.published[idx].Load() {
			break
		}
		dst = append(dst, q.events[idx])
		q.events[idx] = GameEvent{}
		q.published[idx].Store(false)
	}

	// Slot is released to producers only after it is cleared
	q.head.Store(head)
	return dst
}

// Len returns approximate pending command count
func (q *EventQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(tail - head)
}

// Dropped returns how many commands were rejected by a full queue
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
