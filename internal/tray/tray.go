// Package tray implements the bounded item tray a player assembles.
package tray

// DefaultCapacity is the tray size used when none is configured.
const DefaultCapacity = 12

// Tray is an ordered, bounded sequence of item kind ids.
type Tray struct {
	items    []string
	capacity int
}

// New returns an empty tray. Non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Tray {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tray{items: make([]string, 0, capacity), capacity: capacity}
}

// Append adds an item. It returns false and leaves the tray unchanged when full.
func (t *Tray) Append(id string) bool {
	if len(t.items) >= t.capacity {
		return false
	}
	t.items = append(t.items, id)
	return true
}

// RemoveLast drops the most recent item. No-op when empty.
func (t *Tray) RemoveLast() {
	if len(t.items) == 0 {
		return
	}
	t.items = t.items[:len(t.items)-1]
}

// Clear empties the tray.
func (t *Tray) Clear() {
	t.items = t.items[:0]
}

// Contents returns a copy of the items in insertion order.
func (t *Tray) Contents() []string {
	out := make([]string, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of items.
func (t *Tray) Len() int {
	return len(t.items)
}

// Cap returns the capacity.
func (t *Tray) Cap() int {
	return t.capacity
}

// Full reports whether another Append would be rejected.
func (t *Tray) Full() bool {
	return len(t.items) >= t.capacity
}
