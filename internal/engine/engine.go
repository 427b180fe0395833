// Package engine runs the day and customer lifecycle of the shop.
//
// The engine is driven entirely by Tick: it owns a virtual-time scheduler
// holding the session countdown, the patience countdown, and the cooldown
// before the next customer. It is meant to be owned by a single goroutine.
package engine

import (
	"time"

	"github.com/verte-zerg/tuicandy/internal/catalog"
	"github.com/verte-zerg/tuicandy/internal/evaluator"
	"github.com/verte-zerg/tuicandy/internal/generator"
	"github.com/verte-zerg/tuicandy/internal/model"
	"github.com/verte-zerg/tuicandy/internal/sched"
	"github.com/verte-zerg/tuicandy/internal/tray"
)

const (
	DefaultDayLength = 120
	DefaultPatience  = 25
	DefaultCooldown  = 800 * time.Millisecond

	tickInterval = time.Second
)

// Phase is the lifecycle position of the engine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingOrder
	PhaseOrderActive
	PhaseDayEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingOrder:
		return "awaiting-order"
	case PhaseOrderActive:
		return "order-active"
	case PhaseDayEnded:
		return "day-ended"
	default:
		return "unknown"
	}
}

// Reason explains a rejected player action.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonTrayFull      Reason = "tray_full"
	ReasonNoActiveOrder Reason = "no_active_order"
	ReasonUnknownKind   Reason = "unknown_kind"
)

// AddResult reports the outcome of AddToTray.
type AddResult struct {
	OK     bool
	Reason Reason
}

// ServeResult reports the outcome of Serve.
type ServeResult struct {
	OK      bool
	Reason  Reason
	Verdict model.Verdict
	Tier    model.Tier
	Coins   int
}

// DefaultConfig returns the stock game settings.
func DefaultConfig() model.Config {
	return model.Config{
		StartDay:  1,
		DayLength: DefaultDayLength,
		Patience:  DefaultPatience,
		TrayMax:   tray.DefaultCapacity,
		Cooldown:  DefaultCooldown,
	}
}

// session is the state of one day. A fresh value is created per day.
type session struct {
	state model.SessionState
	order *model.Order
	tray  *tray.Tray
	start time.Duration
}

// Engine coordinates generation, evaluation, scoring, and timers.
type Engine struct {
	cfg     model.Config
	catalog *catalog.Catalog
	gen     *generator.Generator
	sched   *sched.Scheduler

	phase   Phase
	day     int
	session *session
	summary *model.Summary

	patienceTimer sched.Handle

	events   []Event
	eventSeq uint64
}

// New builds an idle engine. Zero config fields take their defaults.
func New(cfg model.Config, cat *catalog.Catalog, gen *generator.Generator) *Engine {
	cfg = normalizeConfig(cfg)
	if cat == nil {
		cat = catalog.Default()
	}
	if gen == nil {
		gen = generator.New()
	}
	return &Engine{
		cfg:     cfg,
		catalog: cat,
		gen:     gen,
		sched:   sched.New(),
		phase:   PhaseIdle,
		day:     cfg.StartDay,
	}
}

func normalizeConfig(cfg model.Config) model.Config {
	def := DefaultConfig()
	if cfg.StartDay < 1 {
		cfg.StartDay = def.StartDay
	}
	if cfg.DayLength <= 0 {
		cfg.DayLength = def.DayLength
	}
	if cfg.Patience <= 0 {
		cfg.Patience = def.Patience
	}
	if cfg.TrayMax <= 0 {
		cfg.TrayMax = def.TrayMax
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = def.Cooldown
	}
	return cfg
}

// StartDay cancels any running timers and opens a fresh day.
// The first customer arrives immediately.
func (e *Engine) StartDay(day int) {
	if day < 1 {
		day = 1
	}
	e.sched.CancelAll()
	e.patienceTimer = 0
	e.day = day
	e.summary = nil
	e.session = &session{
		state: model.SessionState{
			Day:           day,
			TimeRemaining: e.cfg.DayLength,
			Patience:      e.cfg.Patience,
		},
		tray:  tray.New(e.cfg.TrayMax),
		start: e.sched.Now(),
	}
	e.phase = PhaseAwaitingOrder
	e.sched.Every(tickInterval, e.tickSession)
	e.spawnOrder()
}

// EndDay stops the day and returns its summary. Calling it on a finished
// day returns the frozen summary.
func (e *Engine) EndDay() model.Summary {
	switch e.phase {
	case PhaseDayEnded:
		return *e.summary
	case PhaseIdle:
		return model.Summary{SessionState: model.SessionState{Day: e.day}}
	}
	e.finishDay()
	return *e.summary
}

// NextDay starts the following day. It only applies after a day has ended.
func (e *Engine) NextDay() bool {
	if e.phase != PhaseDayEnded {
		return false
	}
	e.StartDay(e.day + 1)
	return true
}

// Restart drops the current day and returns to idle at day one.
func (e *Engine) Restart() {
	e.sched.CancelAll()
	e.patienceTimer = 0
	e.session = nil
	e.summary = nil
	e.phase = PhaseIdle
	e.day = 1
}

// Tick advances virtual time, firing every timer that falls due.
func (e *Engine) Tick(elapsed time.Duration) {
	e.sched.Advance(elapsed)
}

// AddToTray places one item on the tray of the active order.
func (e *Engine) AddToTray(kindID string) AddResult {
	if e.phase != PhaseOrderActive {
		return AddResult{Reason: ReasonNoActiveOrder}
	}
	if _, ok := e.catalog.Lookup(kindID); !ok {
		return AddResult{Reason: ReasonUnknownKind}
	}
	if !e.session.tray.Append(kindID) {
		return AddResult{Reason: ReasonTrayFull}
	}
	return AddResult{OK: true}
}

// UndoLast removes the most recent tray item.
func (e *Engine) UndoLast() {
	if e.phase != PhaseOrderActive {
		return
	}
	e.session.tray.RemoveLast()
}

// ClearTray empties the tray.
func (e *Engine) ClearTray() {
	if e.phase != PhaseOrderActive {
		return
	}
	e.session.tray.Clear()
}

// Serve hands the tray to the customer and scores it.
func (e *Engine) Serve() ServeResult {
	if e.phase != PhaseOrderActive {
		return ServeResult{Reason: ReasonNoActiveOrder}
	}
	s := e.session
	contents := s.tray.Contents()
	verdict := evaluator.Evaluate(*s.order, contents)
	result := evaluator.Score(verdict, s.state.Patience)
	s.state.Apply(result)
	e.emit(Event{
		Type:     EventServed,
		Order:    *s.order,
		Tray:     contents,
		Result:   result,
		Patience: s.state.Patience,
	})
	e.endRound()
	return ServeResult{OK: true, Verdict: verdict, Tier: result.Tier, Coins: result.Coins}
}

func (e *Engine) tickSession() {
	s := e.session
	s.state.TimeRemaining--
	if s.state.TimeRemaining <= 0 {
		s.state.TimeRemaining = 0
		e.finishDay()
	}
}

func (e *Engine) tickPatience() {
	if e.phase != PhaseOrderActive {
		return
	}
	s := e.session
	s.state.Patience--
	if s.state.Patience > 0 {
		return
	}
	s.state.Patience = 0
	result := evaluator.Timeout()
	s.state.Apply(result)
	s.state.TimedOut++
	e.emit(Event{
		Type:   EventTimedOut,
		Order:  *s.order,
		Tray:   s.tray.Contents(),
		Result: result,
	})
	e.endRound()
}

// endRound clears the customer and schedules the next one after the cooldown.
func (e *Engine) endRound() {
	s := e.session
	s.order = nil
	s.tray.Clear()
	e.phase = PhaseAwaitingOrder
	e.sched.Cancel(e.patienceTimer)
	e.patienceTimer = 0
	e.sched.After(e.cfg.Cooldown, e.spawnOrder)
}

func (e *Engine) spawnOrder() {
	s := e.session
	order := e.gen.Generate(s.state.Day, e.catalog.Kinds())
	s.order = &order
	s.tray.Clear()
	s.state.Patience = e.cfg.Patience
	e.phase = PhaseOrderActive
	e.sched.Cancel(e.patienceTimer)
	e.patienceTimer = e.sched.Every(tickInterval, e.tickPatience)
	e.emit(Event{Type: EventOrderArrived, Order: order})
}

func (e *Engine) finishDay() {
	e.sched.CancelAll()
	e.patienceTimer = 0
	s := e.session
	s.order = nil
	s.tray.Clear()
	e.phase = PhaseDayEnded
	e.summary = &model.Summary{SessionState: s.state}
	e.emit(Event{Type: EventDayEnded})
}

func (e *Engine) emit(ev Event) {
	e.eventSeq++
	ev.ID = e.eventSeq
	ev.Day = e.day
	if e.session != nil {
		ev.Offset = e.sched.Now() - e.session.start
	}
	e.events = append(e.events, ev)
}

// DrainEvents returns and clears the pending events in emission order.
func (e *Engine) DrainEvents() []Event {
	out := e.events
	e.events = nil
	return out
}

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Day returns the current (or next to start) day number.
func (e *Engine) Day() int {
	return e.day
}

// State returns a copy of the session state.
func (e *Engine) State() model.SessionState {
	if e.session == nil {
		return model.SessionState{Day: e.day}
	}
	return e.session.state
}

// Order returns the active order.
func (e *Engine) Order() (model.Order, bool) {
	if e.session == nil || e.session.order == nil {
		return model.Order{}, false
	}
	o := *e.session.order
	o.Requirements = append([]model.Requirement(nil), o.Requirements...)
	return o, true
}

// Tray returns the tray contents.
func (e *Engine) Tray() []string {
	if e.session == nil {
		return nil
	}
	return e.session.tray.Contents()
}

// TrayCapacity returns the configured tray size.
func (e *Engine) TrayCapacity() int {
	return e.cfg.TrayMax
}

// TimeRemaining returns the seconds left in the day.
func (e *Engine) TimeRemaining() int {
	if e.session == nil {
		return 0
	}
	return e.session.state.TimeRemaining
}

// PatienceFraction returns the remaining patience as a value in [0,1].
func (e *Engine) PatienceFraction() float64 {
	if e.session == nil {
		return 0
	}
	f := float64(e.session.state.Patience) / float64(e.cfg.Patience)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Summary returns the frozen summary once the day has ended.
func (e *Engine) Summary() (model.Summary, bool) {
	if e.summary == nil {
		return model.Summary{}, false
	}
	return *e.summary, true
}

// Elapsed returns the virtual time since the day started.
func (e *Engine) Elapsed() time.Duration {
	if e.session == nil {
		return 0
	}
	return e.sched.Now() - e.session.start
}

// PendingTimers returns the number of scheduled timers.
func (e *Engine) PendingTimers() int {
	return e.sched.Pending()
}

// Catalog returns the item catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Config returns the effective settings.
func (e *Engine) Config() model.Config {
	return e.cfg
}
