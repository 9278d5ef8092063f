package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the pager-style bindings. The letter choices follow the
// original follow(1) bindings; capitals are the overshooting variants.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	UpPast    key.Binding
	DownPast  key.Binding
	Left      key.Binding
	Right     key.Binding
	LeftPast  key.Binding
	RightPast key.Binding
	PageDown  key.Binding
	PageUp    key.Binding
	HalfDown  key.Binding
	HalfUp    key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Follow    key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k", "y"), key.WithHelp("↑/k", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "e"), key.WithHelp("↓/j", "scroll down")),
		UpPast:    key.NewBinding(key.WithKeys("K", "Y"), key.WithHelp("K", "scroll up past the top")),
		DownPast:  key.NewBinding(key.WithKeys("J", "E"), key.WithHelp("J", "scroll down past the end")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pan left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pan right")),
		LeftPast:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "pan left past the edge")),
		RightPast: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "pan right past the edge")),
		PageDown:  key.NewBinding(key.WithKeys(" ", "f", "pgdown"), key.WithHelp("space/f", "page down")),
		PageUp:    key.NewBinding(key.WithKeys("b", "pgup"), key.WithHelp("b", "page up")),
		HalfDown:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "half page down")),
		HalfUp:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "half page up")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "go to top")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "go to bottom")),
		Follow:    key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "toggle follow mode")),
		Refresh:   key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "refresh now")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageDown, k.PageUp, k.Follow, k.Refresh, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.UpPast, k.DownPast, k.Left, k.Right},
		{k.PageDown, k.PageUp, k.HalfDown, k.HalfUp, k.Top, k.Bottom},
		{k.Follow, k.Refresh, k.Help, k.Quit},
	}
}
