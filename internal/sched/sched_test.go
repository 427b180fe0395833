package sched

import (
	"testing"
	"time"
)

func TestEveryFiresOncePerInterval(t *testing.T) {
	s := New()
	count := 0
	s.Every(time.Second, func() { count++ })

	s.Advance(999 * time.Millisecond)
	if count != 0 {
		t.Fatalf("expected no ticks before one second, got %d", count)
	}
	s.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("expected one tick at one second, got %d", count)
	}
	s.Advance(5 * time.Second)
	if count != 6 {
		t.Fatalf("expected six ticks, got %d", count)
	}
	if s.Now() != 6*time.Second {
		t.Fatalf("unexpected virtual time %v", s.Now())
	}
}

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	count := 0
	h := s.After(800*time.Millisecond, func() { count++ })
	if !s.Active(h) {
		t.Fatalf("expected handle to be active")
	}
	s.Advance(2 * time.Second)
	if count != 1 {
		t.Fatalf("expected one call, got %d", count)
	}
	if s.Active(h) || s.Pending() != 0 {
		t.Fatalf("expected one-shot to be gone after firing")
	}
}

func TestSameInstantKeepsSchedulingOrder(t *testing.T) {
	s := New()
	var order []string
	s.Every(time.Second, func() { order = append(order, "a") })
	s.Every(time.Second, func() { order = append(order, "b") })
	s.Advance(2 * time.Second)
	want := []string{"a", "b", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("unexpected order: %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected order: %v", order)
		}
	}
}

func TestCancel(t *testing.T) {
	s := New()
	count := 0
	h := s.Every(time.Second, func() { count++ })
	s.Advance(2 * time.Second)
	s.Cancel(h)
	s.Cancel(h)
	s.Advance(5 * time.Second)
	if count != 2 {
		t.Fatalf("expected ticks to stop after cancel, got %d", count)
	}
}

func TestCancelFromInsideCallback(t *testing.T) {
	s := New()
	count := 0
	var h Handle
	h = s.Every(time.Second, func() {
		count++
		if count == 3 {
			s.Cancel(h)
		}
	})
	s.Advance(10 * time.Second)
	if count != 3 {
		t.Fatalf("expected three ticks, got %d", count)
	}
}

func TestCancelAllFromInsideCallback(t *testing.T) {
	s := New()
	a, b, c := 0, 0, 0
	s.Every(time.Second, func() {
		a++
		if a == 2 {
			s.CancelAll()
		}
	})
	s.Every(time.Second, func() { b++ })
	s.After(5*time.Second, func() { c++ })
	s.Advance(10 * time.Second)
	if a != 2 || b != 1 || c != 0 {
		t.Fatalf("unexpected counts a=%d b=%d c=%d", a, b, c)
	}
	if s.Pending() != 0 {
		t.Fatalf("expected nothing pending, got %d", s.Pending())
	}
}

func TestScheduleDuringAdvanceFiresWhenDue(t *testing.T) {
	s := New()
	var at []time.Duration
	s.After(time.Second, func() {
		s.After(800*time.Millisecond, func() { at = append(at, s.Now()) })
	})
	s.Advance(3 * time.Second)
	if len(at) != 1 || at[0] != 1800*time.Millisecond {
		t.Fatalf("expected nested event at 1.8s, got %v", at)
	}
}
