package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuicandy/internal/model"
)

const (
	patienceBarWidth = 30
	trayWidth        = 40
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	patienceHigh  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	patienceMid   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAAD14"))
	patienceLow   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	patienceEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	cardStyle     = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	activeCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("#C89A3A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.screen {
	case screenGame:
		content = m.renderGame()
	case screenSummary:
		content = m.renderSummary()
	default:
		content = m.renderStorefront()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderStorefront() string {
	lines := []string{
		titleStyle.Render("Candy Bakery"),
		"",
		fmt.Sprintf("Day %d", m.engine.Day()),
		labelStyle.Render("Fill each tray before the customer runs out of patience."),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderGame() string {
	sections := []string{
		m.renderHUD(),
		m.renderOrder(),
		m.renderBins(),
		m.renderTray(),
		messageStyle.Render(m.message),
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderHUD() string {
	st := m.engine.State()
	return hudStyle.Render(fmt.Sprintf("Day %d   Time %s   Coins %d", st.Day, formatTime(st.TimeRemaining), st.Coins))
}

func (m *Model) renderOrder() string {
	order, ok := m.engine.Order()
	if !ok {
		return cardStyle.Render(labelStyle.Render("Waiting for the next customer..."))
	}
	cat := m.engine.Catalog()
	pills := make([]string, 0, len(order.Requirements))
	for _, r := range order.Requirements {
		kind, _ := cat.Lookup(r.KindID)
		pills = append(pills, orderPill(kind, r.Count))
	}
	body := strings.Join([]string{
		describeOrder(order, cat),
		strings.Join(pills, "  "),
		patienceBar(m.engine.PatienceFraction(), patienceBarWidth),
	}, "\n")
	return activeCardStyle.Render(body)
}

func orderPill(kind model.ItemKind, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d× ", count)
	shown := count
	if shown > 3 {
		shown = 3
	}
	for i := 0; i < shown; i++ {
		b.WriteString(symbolFor(kind))
	}
	if count > 3 {
		b.WriteString("…")
	}
	return b.String()
}

func patienceBar(frac float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(frac * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	style := patienceHigh
	switch {
	case frac <= 0.25:
		style = patienceLow
	case frac <= 0.5:
		style = patienceMid
	}
	return style.Render(strings.Repeat("█", filled)) + patienceEmpty.Render(strings.Repeat("░", width-filled))
}

func (m *Model) renderBins() string {
	kinds := m.engine.Catalog().Kinds()
	cells := make([]string, 0, len(kinds))
	for i, k := range kinds {
		if i >= 10 {
			break
		}
		keyLabel := (i + 1) % 10
		cells = append(cells, fmt.Sprintf("%s %s %s", labelStyle.Render(fmt.Sprintf("[%d]", keyLabel)), symbolFor(k), k.Name))
	}
	var rows []string
	for i := 0; i < len(cells); i += 2 {
		left := padRight(cells[i], 24)
		if i+1 < len(cells) {
			rows = append(rows, left+cells[i+1])
		} else {
			rows = append(rows, left)
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderTray() string {
	contents := m.engine.Tray()
	cat := m.engine.Catalog()
	chips := make([]chip, 0, len(contents))
	for _, id := range contents {
		kind, _ := cat.Lookup(id)
		sym := symbolFor(kind)
		chips = append(chips, chip{s: sym, width: runewidth.StringWidth(sym)})
	}
	header := labelStyle.Render(fmt.Sprintf("Tray %d/%d", len(contents), m.engine.TrayCapacity()))
	body := wrapChips(chips, trayWidth)
	if body == "" {
		body = labelStyle.Render("(empty)")
	}
	return cardStyle.Width(trayWidth + 2).Render(header + "\n" + body)
}

func (m *Model) renderSummary() string {
	sum, _ := m.engine.Summary()
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Day %d complete", sum.Day)),
		"",
		fmt.Sprintf("Customers served: %d", sum.Served),
		fmt.Sprintf("Perfect: %d", sum.Perfect),
		fmt.Sprintf("Pretty good: %d", sum.OK),
		fmt.Sprintf("Failed: %d (%d walked out)", sum.Failed, sum.TimedOut),
		fmt.Sprintf("Coins earned: %d", sum.Coins),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	var bindings []key.Binding
	switch m.screen {
	case screenGame:
		bindings = []key.Binding{m.keys.Add, m.keys.Serve, m.keys.Undo, m.keys.Clear, m.keys.EndDay}
	case screenSummary:
		bindings = []key.Binding{m.keys.NextDay, m.keys.Restart, m.keys.Quit}
	default:
		bindings = []key.Binding{m.keys.Open, m.keys.Quit}
	}
	return footerStyle.Render(m.help.View(helpKeys(bindings)))
}

func symbolFor(kind model.ItemKind) string {
	if kind.Symbol != "" {
		return kind.Symbol
	}
	if kind.ID == "" {
		return "?"
	}
	return strings.ToUpper(kind.ID[:1])
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}
