// Package generator builds randomized customer orders.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tuicandy/internal/model"
)

const (
	minDistinct  = 2
	maxDistinct  = 4
	minCount     = 1
	maxCount     = 3
	atLeastShare = 0.25
)

// Generator produces randomized orders.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// NewWithRand wraps an existing random source.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// MaxDistinct returns the upper bound of distinct kinds for a day.
func MaxDistinct(day int) int {
	n := minDistinct + day/2
	if n > maxDistinct {
		n = maxDistinct
	}
	if n < minDistinct {
		n = minDistinct
	}
	return n
}

// Generate draws an order for the given day from kinds.
// kinds must hold at least four entries.
func (g *Generator) Generate(day int, kinds []model.ItemKind) model.Order {
	distinct := g.intBetween(minDistinct, MaxDistinct(day))
	if distinct > len(kinds) {
		distinct = len(kinds)
	}
	chosen := sample(g.rnd, kinds, distinct)

	reqs := make([]model.Requirement, 0, len(chosen))
	for _, k := range chosen {
		reqs = append(reqs, model.Requirement{KindID: k.ID, Count: g.intBetween(minCount, maxCount)})
	}
	mode := model.ModeExact
	if g.rnd.Float64() < atLeastShare {
		mode = model.ModeAtLeast
	}
	return model.Order{Requirements: reqs, Mode: mode}
}

func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rnd.Intn(hi-lo+1)
}

// sample shuffles a copy of kinds and keeps the first n.
func sample(rnd *rand.Rand, kinds []model.ItemKind, n int) []model.ItemKind {
	cp := make([]model.ItemKind, len(kinds))
	copy(cp, kinds)
	for i := len(cp) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:n]
}
