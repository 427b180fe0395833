// Package catalog holds the selectable item kinds.
package catalog

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/verte-zerg/tuicandy/internal/model"
)

// MinKinds is the smallest catalog the order generator can draw from.
const MinKinds = 4

// Catalog is an immutable ordered list of item kinds.
type Catalog struct {
	kinds []model.ItemKind
	index map[string]int
}

// Candies is the built-in candy catalog.
var Candies = []model.ItemKind{
	{ID: "berry", Name: "Berry Pop", Symbol: "🍓"},
	{ID: "lemon", Name: "Lemon Drop", Symbol: "🍋"},
	{ID: "lime", Name: "Lime Slice", Symbol: "🟢"},
	{ID: "grape", Name: "Grape Gem", Symbol: "🍇"},
	{ID: "blue", Name: "Blueberry", Symbol: "🔵"},
	{ID: "choco", Name: "Choco Bite", Symbol: "🍫"},
	{ID: "vanilla", Name: "Vanilla Fudge", Symbol: "🧈"},
	{ID: "cola", Name: "Cola Chew", Symbol: "🥤"},
	{ID: "gum", Name: "Bubble Gum", Symbol: "🍬"},
	{ID: "mint", Name: "Mint Leaf", Symbol: "🌿"},
}

// Default returns the built-in candy catalog.
func Default() *Catalog {
	c, err := New(Candies)
	if err != nil {
		panic(err)
	}
	return c
}

// New validates kinds and builds a catalog.
func New(kinds []model.ItemKind) (*Catalog, error) {
	if len(kinds) < MinKinds {
		return nil, fmt.Errorf("catalog needs at least %d kinds, got %d", MinKinds, len(kinds))
	}
	c := &Catalog{
		kinds: make([]model.ItemKind, len(kinds)),
		index: make(map[string]int, len(kinds)),
	}
	for i, k := range kinds {
		id := strings.TrimSpace(k.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog entry %d has an empty id", i+1)
		}
		if _, dup := c.index[id]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", id)
		}
		name := strings.TrimSpace(k.Name)
		if name == "" {
			name = id
		}
		c.kinds[i] = model.ItemKind{ID: id, Name: name, Symbol: k.Symbol}
		c.index[id] = i
	}
	return c, nil
}

// Kinds returns a copy of the catalog entries.
func (c *Catalog) Kinds() []model.ItemKind {
	out := make([]model.ItemKind, len(c.kinds))
	copy(out, c.kinds)
	return out
}

// Len returns the number of kinds.
func (c *Catalog) Len() int {
	return len(c.kinds)
}

// Lookup returns the kind with the given id.
func (c *Catalog) Lookup(id string) (model.ItemKind, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.ItemKind{}, false
	}
	return c.kinds[i], true
}

// At returns the kind at a zero-based position.
func (c *Catalog) At(i int) (model.ItemKind, bool) {
	if i < 0 || i >= len(c.kinds) {
		return model.ItemKind{}, false
	}
	return c.kinds[i], true
}

// Find matches a query against ids and names, tolerating small typos.
func (c *Catalog) Find(query string) (model.ItemKind, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return model.ItemKind{}, false
	}
	if k, ok := c.Lookup(q); ok {
		return k, true
	}
	best := -1
	bestDist := 0
	for i, k := range c.kinds {
		for _, cand := range []string{k.ID, strings.ToLower(k.Name)} {
			if strings.HasPrefix(cand, q) {
				return k, true
			}
			dist := levenshtein.ComputeDistance(q, cand)
			if dist > distanceLimit(len(cand)) {
				continue
			}
			if best == -1 || dist < bestDist {
				best = i
				bestDist = dist
			}
		}
	}
	if best == -1 {
		return model.ItemKind{}, false
	}
	return c.kinds[best], true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
