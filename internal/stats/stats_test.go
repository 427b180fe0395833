package stats

import (
	"testing"

	"github.com/verte-zerg/tuicandy/internal/model"
)

func TestDayMetrics(t *testing.T) {
	rate, avg := DayMetrics(model.DayRecord{Served: 4, Perfect: 1, Coins: 30})
	if rate != 0.25 || avg != 7.5 {
		t.Fatalf("unexpected metrics %v %v", rate, avg)
	}
	rate, avg = DayMetrics(model.DayRecord{})
	if rate != 0 || avg != 0 {
		t.Fatalf("expected zero metrics for an empty day")
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 10}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); len(got) != 3 {
		t.Fatalf("expected flat line of 3, got %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestSumPicksBestDay(t *testing.T) {
	days := []model.DayRecord{
		{Day: 1, Coins: 0, Served: 2, Failed: 2, TimedOut: 1},
		{Day: 2, Coins: 40, Served: 5, Perfect: 3, OK: 2},
		{Day: 3, Coins: 12, Served: 3, Perfect: 1, OK: 1, Failed: 1},
	}
	tot := Sum(days)
	if tot.BestDay != 2 || tot.BestCoins != 40 || tot.Coins != 52 || tot.Served != 10 || tot.TimedOut != 1 {
		t.Fatalf("unexpected totals: %+v", tot)
	}
}
