// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/tuicandy/internal/model"
)

const sparkChars = " .:-=+*#%@"

// DayMetrics computes the perfect rate and the average coins per customer for a day.
func DayMetrics(d model.DayRecord) (perfectRate, coinsPerServe float64) {
	if d.Served <= 0 {
		return 0, 0
	}
	served := float64(d.Served)
	return float64(d.Perfect) / served, float64(d.Coins) / served
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Totals sums tallies over days.
type Totals struct {
	Days      int
	Coins     int
	Served    int
	Perfect   int
	OK        int
	Failed    int
	TimedOut  int
	BestCoins int
	BestDay   int
}

// Sum aggregates day records.
func Sum(days []model.DayRecord) Totals {
	var t Totals
	for _, d := range days {
		t.Days++
		t.Coins += d.Coins
		t.Served += d.Served
		t.Perfect += d.Perfect
		t.OK += d.OK
		t.Failed += d.Failed
		t.TimedOut += d.TimedOut
		if d.Coins > t.BestCoins || t.BestDay == 0 {
			t.BestCoins = d.Coins
			t.BestDay = d.Day
		}
	}
	return t
}

// CoinSeries returns coins per day, smoothed over window.
func CoinSeries(days []model.DayRecord, window int) []float64 {
	values := make([]float64, len(days))
	for i, d := range days {
		values[i] = float64(d.Coins)
	}
	return MovingAverage(values, window)
}

// RenderSummary prints a summary block for days.
func RenderSummary(w io.Writer, days []model.DayRecord, window int) error {
	if len(days) == 0 {
		_, err := fmt.Fprintln(w, "No days found.")
		return err
	}
	t := Sum(days)
	perfectRate := 0.0
	if t.Served > 0 {
		perfectRate = float64(t.Perfect) / float64(t.Served)
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Days: %d", t.Days),
		fmt.Sprintf("Coins: %d (avg %.1f per day)", t.Coins, float64(t.Coins)/float64(t.Days)),
		fmt.Sprintf("Best day: %d coins (day %d)", t.BestCoins, t.BestDay),
		fmt.Sprintf("Customers: %d served, %d perfect, %d ok, %d failed (%d walked out)", t.Served, t.Perfect, t.OK, t.Failed, t.TimedOut),
		fmt.Sprintf("Perfect rate: %.2f%%", perfectRate*100),
		fmt.Sprintf("Coins trend: %s", Sparkline(CoinSeries(days, window))),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderDayTable prints one row per stored day.
func RenderDayTable(w io.Writer, days []model.DayRecord) error {
	if len(days) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Days"); err != nil {
		return err
	}
	headers := []string{"Date", "Day", "Coins", "Served", "Perfect", "OK", "Failed", "Perfect %"}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rate, _ := DayMetrics(d)
		rows = append(rows, []string{
			d.EndedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", d.Day),
			fmt.Sprintf("%d", d.Coins),
			fmt.Sprintf("%d", d.Served),
			fmt.Sprintf("%d", d.Perfect),
			fmt.Sprintf("%d", d.OK),
			fmt.Sprintf("%d", d.Failed),
			fmt.Sprintf("%.1f%%", rate*100),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderTierTable prints rounds grouped by mode and tier.
func RenderTierTable(w io.Writer, counts []model.TierCount) error {
	if len(counts) == 0 {
		_, err := fmt.Fprintln(w, "No rounds found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Rounds by mode"); err != nil {
		return err
	}
	headers := []string{"Mode", "Tier", "Rounds", "Coins"}
	rows := make([][]string, 0, len(counts))
	for _, tc := range counts {
		rows = append(rows, []string{
			tc.Mode.String(),
			tc.Tier.String(),
			fmt.Sprintf("%d", tc.Count),
			fmt.Sprintf("%d", tc.Coins),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{2: true, 3: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
