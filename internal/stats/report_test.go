package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuicandy/internal/model"
	"github.com/verte-zerg/tuicandy/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "tuicandy.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Hour)
		day := model.DayRecord{
			RunID:     "run",
			Day:       i + 1,
			StartedAt: start,
			EndedAt:   start.Add(2 * time.Minute),
			Coins:     20 + i,
			Served:    4,
			Perfect:   2,
			OK:        1,
			Failed:    1,
		}
		rounds := []model.RoundRecord{
			{Mode: model.ModeExact, Kinds: 2, Items: 3, Tier: model.TierPerfect, Coins: 12},
			{Mode: model.ModeAtLeast, Kinds: 2, Items: 5, Tier: model.TierPerfect, Coins: 10},
		}
		id, err := st.InsertDay(ctx, day, rounds)
		if err != nil {
			t.Fatalf("insert day: %v", err)
		}
		ids = append(ids, id)
	}

	report, err := BuildReport(ctx, st, model.StatsConfig{Last: 2, Window: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(report.Days))
	}
	if report.Days[0].ID != ids[1] || report.Days[1].ID != ids[2] {
		t.Fatalf("unexpected day ids: %+v", report.Days)
	}
	rounds := 0
	for _, tc := range report.TierCounts {
		rounds += tc.Count
	}
	if rounds != 4 {
		t.Fatalf("expected 4 rounds in window, got %d", rounds)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Days: 2", "Best day: 22 coins (day 3)", "Rounds by mode", "Perfect %"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (Report{}).Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No days found." {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
