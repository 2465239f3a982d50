package voidtripper

import (
	"container/heap"
	"time"
)

// scheduled is a deferred action due at a session-clock instant.
type scheduled struct {
	at   time.Duration
	seq  uint64
	fire func(*Game)
}

// eventQueue is a min-heap ordered by due time, then insertion order.
type eventQueue []scheduled

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(scheduled)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = scheduled{}
	*q = old[:n-1]
	return item
}

// scheduler runs deferred world mutations from inside the tick, so nothing
// outlives a session reset.
type scheduler struct {
	queue eventQueue
	seq   uint64
}

// after queues fire to run once the session clock reaches now+delay.
func (s *scheduler) after(now, delay time.Duration, fire func(*Game)) {
	s.seq++
	heap.Push(&s.queue, scheduled{at: now + delay, seq: s.seq, fire: fire})
}

// drain runs every action due at or before now, in order.
// Actions may schedule further actions; those run too if already due.
func (s *scheduler) drain(now time.Duration, g *Game) {
	for len(s.queue) > 0 && s.queue[0].at <= now {
		item := heap.Pop(&s.queue).(scheduled)
		item.fire(g)
	}
}

func (s *scheduler) clear() {
	s.queue = nil
	s.seq = 0
}

func (s *scheduler) pending() int {
	return len(s.queue)
}
