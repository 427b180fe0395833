package engine

import (
	"time"

	"github.com/verte-zerg/tuicandy/internal/model"
)

// EventType describes a round lifecycle change.
type EventType string

const (
	EventOrderArrived EventType = "OrderArrived"
	EventServed       EventType = "Served"
	EventTimedOut     EventType = "TimedOut"
	EventDayEnded     EventType = "DayEnded"
)

// Event is emitted by the engine and drained by the front-end.
type Event struct {
	ID     uint64
	Day    int
	Offset time.Duration
	Type   EventType
	Order  model.Order
	Tray   []string
	Result model.Result
	// Patience is the remaining patience when the round ended.
	Patience int
}

// Round converts a finished-round event into a history record.
func (e Event) Round() (model.RoundRecord, bool) {
	if e.Type != EventServed && e.Type != EventTimedOut {
		return model.RoundRecord{}, false
	}
	return model.RoundRecord{
		Offset:   e.Offset,
		Mode:     e.Order.Mode,
		Kinds:    len(e.Order.Requirements),
		Items:    len(e.Tray),
		Tier:     e.Result.Tier,
		Coins:    e.Result.Coins,
		Patience: e.Patience,
		TimedOut: e.Type == EventTimedOut,
	}, true
}
