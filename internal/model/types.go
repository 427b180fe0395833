// Package model defines shared data structures.
package model

import "time"

// ItemKind is a selectable catalog entry.
type ItemKind struct {
	ID     string
	Name   string
	Symbol string
}

// Mode selects how a tray is matched against an order.
type Mode int

const (
	// ModeExact requires counts to match precisely and forbids extras.
	ModeExact Mode = iota
	// ModeAtLeast requires counts to be met or exceeded and ignores extras.
	ModeAtLeast
)

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeAtLeast:
		return "at-least"
	default:
		return "unknown"
	}
}

// Requirement is a single kind/count pair of an order.
type Requirement struct {
	KindID string
	Count  int
}

// Order is a customer request. Requirements hold distinct kind IDs in generation order.
type Order struct {
	Requirements []Requirement
	Mode         Mode
}

// Count returns the required count for a kind, or 0 when the kind is not requested.
func (o Order) Count(kindID string) int {
	for _, r := range o.Requirements {
		if r.KindID == kindID {
			return r.Count
		}
	}
	return 0
}

// Counts returns the requirements as a map.
func (o Order) Counts() map[string]int {
	out := make(map[string]int, len(o.Requirements))
	for _, r := range o.Requirements {
		out[r.KindID] = r.Count
	}
	return out
}

// Tier is the reward class of a finished round.
type Tier int

const (
	TierFailed Tier = iota
	TierOK
	TierPerfect
)

func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "perfect"
	case TierOK:
		return "ok"
	default:
		return "failed"
	}
}

// Verdict is the evaluator output for a tray.
type Verdict struct {
	Perfect    bool
	Acceptable bool
}

// Result is a scored round.
type Result struct {
	Tier  Tier
	Coins int
}

// Config defines game settings.
type Config struct {
	StartDay  int
	DayLength int
	Patience  int
	TrayMax   int
	Cooldown  time.Duration
	Seed      int64
}

// SessionState holds the per-day tallies and timers.
type SessionState struct {
	Day           int
	TimeRemaining int
	Coins         int
	Served        int
	Perfect       int
	OK            int
	Failed        int
	TimedOut      int
	Patience      int
}

// Apply records a round result. Exactly one outcome counter moves.
func (s *SessionState) Apply(r Result) {
	switch r.Tier {
	case TierPerfect:
		s.Perfect++
	case TierOK:
		s.OK++
	default:
		s.Failed++
	}
	s.Served++
	s.Coins += r.Coins
}

// Summary is the frozen state of a finished day.
type Summary struct {
	SessionState
	StartedAt time.Time
	EndedAt   time.Time
}

// RoundRecord captures one finished round for history.
type RoundRecord struct {
	Offset   time.Duration
	Mode     Mode
	Kinds    int
	Items    int
	Tier     Tier
	Coins    int
	Patience int
	TimedOut bool
}

// DayRecord is a stored day summary.
type DayRecord struct {
	ID        int64
	RunID     string
	Day       int
	StartedAt time.Time
	EndedAt   time.Time
	Coins     int
	Served    int
	Perfect   int
	OK        int
	Failed    int
	TimedOut  int
}

// StatsConfig defines filters for history output.
type StatsConfig struct {
	Since  *time.Time
	Last   int
	Window int
}

// TierCount aggregates rounds of one tier across days.
type TierCount struct {
	Tier  Tier
	Mode  Mode
	Count int
	Coins int
}
