package tui

import "strings"

// chip is a rendered tray item and its display width.
type chip struct {
	s     string
	width int
}

// wrapChips lays chips out space-separated, breaking lines before width is exceeded.
func wrapChips(chips []chip, width int) string {
	if len(chips) == 0 {
		return ""
	}
	if width <= 0 {
		return renderChips(chips)
	}
	var out strings.Builder
	line := make([]chip, 0, len(chips))
	lineWidth := 0
	for _, c := range chips {
		next := c.width
		if len(line) > 0 {
			next++
		}
		if lineWidth+next > width && len(line) > 0 {
			out.WriteString(renderChips(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			next = c.width
		}
		line = append(line, c)
		lineWidth += next
	}
	out.WriteString(renderChips(line))
	return out.String()
}

func renderChips(chips []chip) string {
	parts := make([]string, len(chips))
	for i, c := range chips {
		parts[i] = c.s
	}
	return strings.Join(parts, " ")
}
