package tui

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/tuicandy/internal/catalog"
	"github.com/verte-zerg/tuicandy/internal/model"
)

// describeOrder renders what the customer says.
func describeOrder(order model.Order, cat *catalog.Catalog) string {
	parts := make([]string, 0, len(order.Requirements))
	for _, r := range order.Requirements {
		name := r.KindID
		if kind, ok := cat.Lookup(r.KindID); ok {
			name = kind.Name
		}
		if r.Count > 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", r.Count, name))
	}
	sep := ", "
	if len(parts) == 2 {
		sep = " and "
	}
	joined := strings.Join(parts, sep)
	if order.Mode == model.ModeAtLeast {
		return fmt.Sprintf("At least %s, please!", joined)
	}
	return fmt.Sprintf("I want exactly %s.", joined)
}

func formatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
