package evaluator

import "github.com/verte-zerg/tuicandy/internal/model"

const (
	perfectBase    = 8
	perfectDivisor = 5
	okBase         = 4
	okDivisor      = 10
)

// Score turns a verdict and the remaining patience into a reward.
func Score(v model.Verdict, patience int) model.Result {
	switch {
	case v.Perfect:
		return model.Result{Tier: model.TierPerfect, Coins: perfectBase + bonus(patience, perfectDivisor)}
	case v.Acceptable:
		return model.Result{Tier: model.TierOK, Coins: okBase + bonus(patience, okDivisor)}
	default:
		return model.Result{Tier: model.TierFailed}
	}
}

// Timeout is the result of a customer walking out.
func Timeout() model.Result {
	return model.Result{Tier: model.TierFailed}
}

func bonus(patience, divisor int) int {
	if patience <= 0 {
		return 0
	}
	return patience / divisor
}
