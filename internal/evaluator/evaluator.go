// Package evaluator compares trays against orders and scores the outcome.
package evaluator

import "github.com/verte-zerg/tuicandy/internal/model"

// Evaluate checks a tray against an order.
//
// In exact mode the tray must equal the requirements as a multiset to be
// perfect; it is acceptable when every requested kind is present at least
// once and nothing else is on the tray. In at-least mode every requested
// count must be met, extras are ignored, and acceptable equals perfect.
func Evaluate(order model.Order, contents []string) model.Verdict {
	actual := countBy(contents)
	perfect := true
	ok := true

	for _, r := range order.Requirements {
		have := actual[r.KindID]
		switch order.Mode {
		case model.ModeExact:
			if have != r.Count {
				perfect = false
			}
			if have == 0 {
				ok = false
			}
		case model.ModeAtLeast:
			if have < r.Count {
				perfect = false
				ok = false
			}
		}
	}

	if order.Mode == model.ModeExact {
		required := order.Counts()
		for id, cnt := range actual {
			need, wanted := required[id]
			if !wanted {
				perfect = false
				ok = false
				continue
			}
			if need != cnt {
				perfect = false
			}
		}
	}

	return model.Verdict{Perfect: perfect, Acceptable: ok || perfect}
}

func countBy(ids []string) map[string]int {
	out := make(map[string]int, len(ids))
	for _, id := range ids {
		out[id]++
	}
	return out
}
