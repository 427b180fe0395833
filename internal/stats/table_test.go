package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Mode", "Coins", "Rounds"}
	rows := [][]string{
		{"exact", "120", "12"},
		{"at-least", "8", "3"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Mode     Coins Rounds" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "exact      120     12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "at-least     8      3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableCountsWideGlyphs(t *testing.T) {
	lines := formatTable([]string{"Item", "N"}, [][]string{{"🍓", "2"}, {"ab", "1"}}, nil)
	if lines[1] != "🍓   2" {
		t.Fatalf("unexpected wide glyph row: %q", lines[1])
	}
	if lines[2] != "ab   1" {
		t.Fatalf("unexpected ascii row: %q", lines[2])
	}
}
