// Package sched provides a virtual-time event scheduler.
//
// Nothing here reads the wall clock: time moves only when Advance is called,
// which makes interval and one-shot timers deterministic under test.
package sched

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled event.
type Handle uint64

type event struct {
	handle    Handle
	at        time.Duration
	seq       uint64
	interval  time.Duration
	fn        func()
	cancelled bool
	index     int
}

// Scheduler runs callbacks at virtual offsets. It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	next   Handle
	queue  eventQueue
	live   map[Handle]*event
	firing bool
}

// New returns an empty scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{live: map[Handle]*event{}}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, d after the current virtual time.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.schedule(d, 0, fn)
}

// Every runs fn each interval, first at Now()+interval.
func (s *Scheduler) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return s.schedule(interval, interval, fn)
}

func (s *Scheduler) schedule(delay, interval time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.next++
	ev := &event{
		handle:   s.next,
		at:       s.now + delay,
		seq:      s.nextSeq(),
		interval: interval,
		fn:       fn,
	}
	s.live[ev.handle] = ev
	heap.Push(&s.queue, ev)
	return ev.handle
}

func (s *Scheduler) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// Cancel stops a pending event. Unknown or fired handles are ignored.
func (s *Scheduler) Cancel(h Handle) {
	ev, ok := s.live[h]
	if !ok {
		return
	}
	ev.cancelled = true
	delete(s.live, h)
	if ev.index >= 0 && ev.index < len(s.queue) && s.queue[ev.index] == ev {
		heap.Remove(&s.queue, ev.index)
	}
}

// CancelAll drops every pending event, including a repeating event that is currently firing.
func (s *Scheduler) CancelAll() {
	for h, ev := range s.live {
		ev.cancelled = true
		delete(s.live, h)
	}
	s.queue = s.queue[:0]
}

// Pending returns the number of live events.
func (s *Scheduler) Pending() int {
	return len(s.live)
}

// Active reports whether h is still scheduled.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.live[h]
	return ok
}

// Advance moves virtual time forward by d and fires due events in time order.
// Events due at the same instant fire in scheduling order. Callbacks may
// schedule or cancel events; anything that falls due before the new time
// fires in the same call. It returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	if s.firing {
		return 0
	}
	s.firing = true
	defer func() { s.firing = false }()

	target := s.now + d
	fired := 0
	for len(s.queue) > 0 && s.queue[0].at <= target {
		ev := heap.Pop(&s.queue).(*event)
		if ev.cancelled {
			continue
		}
		s.now = ev.at
		if ev.interval == 0 {
			delete(s.live, ev.handle)
		}
		ev.fn()
		fired++
		if ev.interval > 0 && !ev.cancelled {
			ev.at += ev.interval
			ev.seq = s.nextSeq()
			heap.Push(&s.queue, ev)
		}
	}
	if s.now < target {
		s.now = target
	}
	return fired
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *eventQueue) Push(x any) {
	ev := x.(*event)
	ev.index = len(*q)
	*q = append(*q, ev)
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	ev.index = -1
	*q = old[:n-1]
	return ev
}
