package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open    key.Binding
	Add     key.Binding
	Serve   key.Binding
	Undo    key.Binding
	Clear   key.Binding
	EndDay  key.Binding
	NextDay key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open shop"),
		),
		Add: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "add candy"),
		),
		Serve: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "serve"),
		),
		Undo: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("bksp", "undo"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "clear"),
		),
		EndDay: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "close early"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "next day"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// binIndex maps a number key to a zero-based catalog position.
func binIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	if s[0] == '0' {
		return 9, true
	}
	return int(s[0] - '1'), true
}

// helpKeys adapts the bindings of one screen to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding {
	return h
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}
