package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	back    key.Binding
	tab     key.Binding
	play    key.Binding
	mix     key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev mood")),
		right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next mood")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch screen")),
		play:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play/stop")),
		mix:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "weekly mix")),
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new entry")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.left, k.right, k.back, k.tab},
		{k.play, k.mix, k.restart, k.quit},
	}
}
