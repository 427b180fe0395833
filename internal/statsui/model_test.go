package statsui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuicandy/internal/model"
	"github.com/verte-zerg/tuicandy/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "tuicandy.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestEmptyHistory(t *testing.T) {
	m := NewModel(openStore(t), model.StatsConfig{Window: 3})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(m.View(), "No days found.") {
		t.Fatalf("expected empty overview")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !strings.Contains(m.View(), "No days found.") {
		t.Fatalf("expected empty days tab")
	}
}

func TestHistoryTabs(t *testing.T) {
	st := openStore(t)
	start := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
	rec := model.DayRecord{
		RunID:     "run",
		Day:       3,
		StartedAt: start,
		EndedAt:   start.Add(2 * time.Minute),
		Coins:     42,
		Served:    4,
		Perfect:   2,
		OK:        1,
		Failed:    1,
	}
	rounds := []model.RoundRecord{{Mode: model.ModeExact, Kinds: 2, Items: 3, Tier: model.TierPerfect, Coins: 12}}
	if _, err := st.InsertDay(context.Background(), rec, rounds); err != nil {
		t.Fatalf("insert day: %v", err)
	}

	m := NewModel(st, model.StatsConfig{Window: 3})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	view := m.View()
	if !strings.Contains(view, "Best day") || !strings.Contains(view, "42") {
		t.Fatalf("expected summary cards in overview:\n%s", view)
	}
	if !strings.Contains(view, "since=any  last=all  window=3") {
		t.Fatalf("expected settings line:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	view = m.View()
	if !strings.Contains(view, "Walkouts") {
		t.Fatalf("expected day table header:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestBuildDayRowsNewestFirst(t *testing.T) {
	days := []model.DayRecord{{Day: 1, Coins: 5}, {Day: 2, Coins: 9}}
	rows := buildDayRows(days)
	if len(rows) != 2 || rows[0][1] != "2" || rows[1][2] != "5" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestFitLines(t *testing.T) {
	out := fitLines("ab\ncd\nef", 4, 2)
	if out != "ab  \ncd  " {
		t.Fatalf("unexpected fit: %q", out)
	}
	if got := truncateLine("abcdefgh", 6); got != "abc..." {
		t.Fatalf("unexpected truncate: %q", got)
	}
}
