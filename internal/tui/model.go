// Package tui provides the Bubble Tea shop interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/verte-zerg/tuicandy/internal/engine"
	"github.com/verte-zerg/tuicandy/internal/model"
	"github.com/verte-zerg/tuicandy/internal/store"
)

const frameInterval = 100 * time.Millisecond

type screen int

const (
	screenStorefront screen = iota
	screenGame
	screenSummary
)

const (
	msgAdded      = "Added to tray."
	msgTrayFull   = "Tray is full!"
	msgWaiting    = "Next customer is on the way..."
	msgPerfect    = "Perfect! The customer is delighted ✨"
	msgOK         = "Pretty good! They seem satisfied 😊"
	msgFailed     = "Oops, that's not what they wanted 😕"
	msgWalkedOut  = "Customer left... time's up! 😭"
	msgNewArrival = "A customer walks in."
)

// tickMsg carries the wall time of a frame. gen discards frames from a
// previous day's ticker.
type tickMsg struct {
	at  time.Time
	gen int
}

// Model implements the Bubble Tea shop UI.
type Model struct {
	engine *engine.Engine
	store  *store.Store
	runID  string

	keys keyMap
	help help.Model

	screen  screen
	message string

	tickGen  int
	lastTick time.Time
	now      func() time.Time

	dayStartedAt time.Time
	rounds       []model.RoundRecord

	width  int
	height int
}

// NewModel constructs the shop TUI. st may be nil to skip history.
func NewModel(eng *engine.Engine, st *store.Store) *Model {
	return &Model{
		engine: eng,
		store:  st,
		runID:  uuid.NewString(),
		keys:   newKeyMap(),
		help:   help.New(),
		screen: screenStorefront,
		now:    time.Now,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenStorefront:
			return m.updateStorefront(msg)
		case screenGame:
			return m.updateGame(msg)
		case screenSummary:
			return m.updateSummary(msg)
		}
	}
	return m, nil
}

func (m *Model) updateStorefront(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		return m, m.startDay(m.engine.Day())
	}
	return m, nil
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Serve):
		m.serve()
	case key.Matches(msg, m.keys.Undo):
		m.engine.UndoLast()
	case key.Matches(msg, m.keys.Clear):
		m.engine.ClearTray()
	case key.Matches(msg, m.keys.EndDay):
		m.engine.EndDay()
		m.collectEvents()
	case key.Matches(msg, m.keys.Add):
		if idx, ok := binIndex(msg.String()); ok {
			m.addBin(idx)
		}
	}
	return m, nil
}

func (m *Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextDay):
		return m, m.startDay(m.engine.Day() + 1)
	case key.Matches(msg, m.keys.Restart):
		m.engine.Restart()
		m.tickGen++
		m.screen = screenStorefront
		m.message = ""
	}
	return m, nil
}

func (m *Model) startDay(day int) tea.Cmd {
	m.engine.StartDay(day)
	m.tickGen++
	m.lastTick = m.now()
	m.dayStartedAt = m.lastTick
	m.rounds = nil
	m.screen = screenGame
	m.message = ""
	m.collectEvents()
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg{at: t, gen: gen}
	})
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != m.tickGen || m.screen != screenGame {
		return nil
	}
	delta := msg.at.Sub(m.lastTick)
	if delta > 0 {
		m.lastTick = msg.at
		m.engine.Tick(delta)
	}
	m.collectEvents()
	if m.screen != screenGame {
		return nil
	}
	return m.tickCmd()
}

func (m *Model) addBin(idx int) {
	kind, ok := m.engine.Catalog().At(idx)
	if !ok {
		return
	}
	res := m.engine.AddToTray(kind.ID)
	switch {
	case res.OK:
		m.message = msgAdded
	case res.Reason == engine.ReasonTrayFull:
		m.message = msgTrayFull
	case res.Reason == engine.ReasonNoActiveOrder:
		m.message = msgWaiting
	}
}

func (m *Model) serve() {
	res := m.engine.Serve()
	if !res.OK {
		m.message = msgWaiting
		return
	}
	m.collectEvents()
}

// collectEvents turns engine events into messages and history rounds.
func (m *Model) collectEvents() {
	for _, ev := range m.engine.DrainEvents() {
		if rec, ok := ev.Round(); ok {
			m.rounds = append(m.rounds, rec)
		}
		switch ev.Type {
		case engine.EventServed:
			m.message = tierMessage(ev.Result.Tier)
		case engine.EventTimedOut:
			m.message = msgWalkedOut
		case engine.EventOrderArrived:
			if m.message == "" {
				m.message = msgNewArrival
			}
		case engine.EventDayEnded:
			m.finishDay()
		}
	}
}

func tierMessage(t model.Tier) string {
	switch t {
	case model.TierPerfect:
		return msgPerfect
	case model.TierOK:
		return msgOK
	default:
		return msgFailed
	}
}

func (m *Model) finishDay() {
	m.screen = screenSummary
	m.tickGen++
	sum, ok := m.engine.Summary()
	if !ok || m.store == nil {
		return
	}
	rec := model.DayRecord{
		RunID:     m.runID,
		Day:       sum.Day,
		StartedAt: m.dayStartedAt,
		EndedAt:   m.now(),
		Coins:     sum.Coins,
		Served:    sum.Served,
		Perfect:   sum.Perfect,
		OK:        sum.OK,
		Failed:    sum.Failed,
		TimedOut:  sum.TimedOut,
	}
	if _, err := m.store.InsertDay(context.Background(), rec, m.rounds); err != nil {
		logErrf("failed to save day: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
