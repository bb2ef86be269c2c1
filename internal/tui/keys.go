package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/dailyquotes/internal/i18n"
)

type keyMap struct {
	Animations key.Binding
	Theme      key.Binding
	Language   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap(labels i18n.Labels) keyMap {
	return keyMap{
		Animations: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", labels.Animations)),
		Theme:      key.NewBinding(key.WithKeys("b", "t"), key.WithHelp("b", labels.Black)),
		Language:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", labels.Language)),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", labels.Quit)),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Animations, k.Theme, k.Language, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Animations, k.Theme},
		{k.Language, k.Help, k.Quit},
	}
}
