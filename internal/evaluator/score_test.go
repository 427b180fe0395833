package evaluator

import (
	"testing"

	"github.com/verte-zerg/tuicandy/internal/model"
)

func TestScoreTiers(t *testing.T) {
	perfect := model.Verdict{Perfect: true, Acceptable: true}
	ok := model.Verdict{Acceptable: true}
	failed := model.Verdict{}

	if got := Score(perfect, 25); got.Tier != model.TierPerfect || got.Coins != 13 {
		t.Fatalf("unexpected perfect score: %+v", got)
	}
	if got := Score(ok, 25); got.Tier != model.TierOK || got.Coins != 6 {
		t.Fatalf("unexpected ok score: %+v", got)
	}
	if got := Score(failed, 25); got.Tier != model.TierFailed || got.Coins != 0 {
		t.Fatalf("unexpected failed score: %+v", got)
	}
	if got := Score(perfect, -3); got.Coins != 8 {
		t.Fatalf("negative patience must not reduce the base, got %d", got.Coins)
	}
	if got := Timeout(); got.Tier != model.TierFailed || got.Coins != 0 {
		t.Fatalf("unexpected timeout result: %+v", got)
	}
}

func TestScoreMonotonicInPatience(t *testing.T) {
	verdicts := []model.Verdict{
		{Perfect: true, Acceptable: true},
		{Acceptable: true},
		{},
	}
	for _, v := range verdicts {
		prev := -1
		for p := -5; p <= 60; p++ {
			got := Score(v, p).Coins
			if got < prev {
				t.Fatalf("coins decreased from %d to %d at patience %d", prev, got, p)
			}
			prev = got
		}
	}
}

func TestApplyKeepsTallyInvariant(t *testing.T) {
	var s model.SessionState
	results := []model.Result{
		Score(model.Verdict{Perfect: true, Acceptable: true}, 10),
		Score(model.Verdict{Acceptable: true}, 10),
		Timeout(),
		Score(model.Verdict{}, 3),
	}
	for _, r := range results {
		s.Apply(r)
		if s.Perfect+s.OK+s.Failed != s.Served {
			t.Fatalf("tally invariant broken: %+v", s)
		}
	}
	if s.Coins != 10+5 {
		t.Fatalf("unexpected coin total %d", s.Coins)
	}
}
