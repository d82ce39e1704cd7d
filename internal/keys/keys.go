// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// BrowseKeyMap defines the keybindings of the particle browser.
type BrowseKeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Filters
	NextFilter key.Binding
	PrevFilter key.Binding

	// General
	Details key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// Browse holds the browser's keybindings.
var Browse = DefaultBrowseKeyMap()

// DefaultBrowseKeyMap returns the default browser keybindings.
func DefaultBrowseKeyMap() BrowseKeyMap {
	return BrowseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "move down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next category"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "previous category"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "details"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k BrowseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Details, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k BrowseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFilter, k.PrevFilter},
		{k.Details, k.Help, k.Quit},
	}
}
