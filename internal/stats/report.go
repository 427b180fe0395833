// Package stats contains statistics calculations and reporting.
package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/tuicandy/internal/model"
	"github.com/verte-zerg/tuicandy/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Days       []model.DayRecord
	TierCounts []model.TierCount
	Window     int
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	days, err := st.ListDays(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(days) > cfg.Last {
		days = days[len(days)-cfg.Last:]
	}
	counts, err := st.ListTierCounts(ctx, dayIDs(days))
	if err != nil {
		return Report{}, err
	}
	return Report{Days: days, TierCounts: counts, Window: cfg.Window}, nil
}

// Render writes the full plain-text report.
func (r Report) Render(w io.Writer) error {
	if err := RenderSummary(w, r.Days, r.Window); err != nil {
		return err
	}
	if len(r.Days) == 0 {
		return nil
	}
	if err := RenderTierTable(w, r.TierCounts); err != nil {
		return err
	}
	return RenderDayTable(w, r.Days)
}

func dayIDs(days []model.DayRecord) []int64 {
	ids := make([]int64, len(days))
	for i, d := range days {
		ids[i] = d.ID
	}
	return ids
}
