package catalog

import (
	"testing"

	"github.com/verte-zerg/tuicandy/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 10 {
		t.Fatalf("expected 10 candies, got %d", c.Len())
	}
	k, ok := c.Lookup("grape")
	if !ok || k.Name != "Grape Gem" {
		t.Fatalf("unexpected lookup result: %+v %v", k, ok)
	}
	first, ok := c.At(0)
	if !ok || first.ID != "berry" {
		t.Fatalf("expected berry first, got %+v", first)
	}
	if _, ok := c.At(10); ok {
		t.Fatalf("expected out of range index to fail")
	}
}

func TestNewRejectsInvalidCatalogs(t *testing.T) {
	small := []model.ItemKind{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	if _, err := New(small); err == nil {
		t.Fatalf("expected error for catalog below minimum size")
	}
	dup := []model.ItemKind{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "a"}}
	if _, err := New(dup); err == nil {
		t.Fatalf("expected error for duplicate ids")
	}
	empty := []model.ItemKind{{ID: "a"}, {ID: " "}, {ID: "c"}, {ID: "d"}}
	if _, err := New(empty); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestNewDefaultsNameToID(t *testing.T) {
	c, err := New([]model.ItemKind{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d", Name: "Dee"}})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	k, _ := c.Lookup("a")
	if k.Name != "a" {
		t.Fatalf("expected name fallback to id, got %q", k.Name)
	}
}

func TestFind(t *testing.T) {
	c := Default()
	cases := map[string]string{
		"choco":      "choco",
		"Bubble":     "gum",
		"vanila":     "vanilla",
		"lemon drpo": "lemon",
	}
	for query, want := range cases {
		k, ok := c.Find(query)
		if !ok || k.ID != want {
			t.Fatalf("find %q: expected %s, got %+v (%v)", query, want, k, ok)
		}
	}
	if _, ok := c.Find("zzzzzzzz"); ok {
		t.Fatalf("expected no match for garbage query")
	}
}
