package generator

import (
	"math/rand"
	"testing"

	"github.com/verte-zerg/tuicandy/internal/catalog"
	"github.com/verte-zerg/tuicandy/internal/model"
)

func TestMaxDistinct(t *testing.T) {
	cases := map[int]int{1: 2, 2: 3, 3: 3, 4: 4, 5: 4, 40: 4}
	for day, want := range cases {
		if got := MaxDistinct(day); got != want {
			t.Fatalf("day %d: expected %d, got %d", day, want, got)
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	kinds := catalog.Default().Kinds()
	gen := NewSeeded(7)
	for day := 1; day <= 8; day++ {
		for i := 0; i < 500; i++ {
			order := gen.Generate(day, kinds)
			n := len(order.Requirements)
			if n < 2 || n > MaxDistinct(day) {
				t.Fatalf("day %d: distinct count %d out of range", day, n)
			}
			seen := map[string]bool{}
			for _, r := range order.Requirements {
				if r.Count < 1 || r.Count > 3 {
					t.Fatalf("count %d out of range", r.Count)
				}
				if seen[r.KindID] {
					t.Fatalf("kind %s requested twice", r.KindID)
				}
				seen[r.KindID] = true
			}
		}
	}
}

func TestGenerateReachesUpperBound(t *testing.T) {
	kinds := catalog.Default().Kinds()
	gen := NewSeeded(3)
	hit := false
	for i := 0; i < 200; i++ {
		if len(gen.Generate(6, kinds).Requirements) == 4 {
			hit = true
			break
		}
	}
	if !hit {
		t.Fatalf("expected some day 6 orders with 4 kinds")
	}
}

func TestGenerateModeShare(t *testing.T) {
	kinds := catalog.Default().Kinds()
	gen := NewSeeded(11)
	atLeast := 0
	const total = 4000
	for i := 0; i < total; i++ {
		if gen.Generate(1, kinds).Mode == model.ModeAtLeast {
			atLeast++
		}
	}
	share := float64(atLeast) / total
	if share < 0.2 || share > 0.3 {
		t.Fatalf("expected roughly 25%% at-least orders, got %.3f", share)
	}
}

func TestGenerateReproducible(t *testing.T) {
	kinds := catalog.Default().Kinds()
	a := NewWithRand(rand.New(rand.NewSource(42)))
	b := NewSeeded(42)
	for i := 0; i < 20; i++ {
		oa := a.Generate(3, kinds)
		ob := b.Generate(3, kinds)
		if oa.Mode != ob.Mode || len(oa.Requirements) != len(ob.Requirements) {
			t.Fatalf("orders diverged at %d", i)
		}
		for j := range oa.Requirements {
			if oa.Requirements[j] != ob.Requirements[j] {
				t.Fatalf("requirements diverged at %d", i)
			}
		}
	}
}

func TestGenerateLeavesCatalogUntouched(t *testing.T) {
	kinds := catalog.Default().Kinds()
	before := append([]model.ItemKind(nil), kinds...)
	NewSeeded(1).Generate(5, kinds)
	for i := range kinds {
		if kinds[i] != before[i] {
			t.Fatalf("catalog order changed at %d", i)
		}
	}
}
