package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var _ help.KeyMap = BrowseKeyMap{}

func TestBrowse_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{name: "Up", binding: Browse.Up, expected: []string{"k", "up"}},
		{name: "Down", binding: Browse.Down, expected: []string{"j", "down"}},
		{name: "NextFilter", binding: Browse.NextFilter, expected: []string{"tab", "l", "right"}},
		{name: "PrevFilter", binding: Browse.PrevFilter, expected: []string{"shift+tab", "h", "left"}},
		{name: "Details", binding: Browse.Details, expected: []string{"enter", " "}},
		{name: "Help", binding: Browse.Help, expected: []string{"?"}},
		{name: "Quit", binding: Browse.Quit, expected: []string{"q", "esc", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
			require.NotEmpty(t, tt.binding.Help().Key)
			require.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestBrowse_MatchesKeyMessages(t *testing.T) {
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, Browse.NextFilter))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyShiftTab}, Browse.PrevFilter))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, Browse.Details))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, Browse.Quit))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, Browse.Quit))
}

func TestBrowse_NoDuplicateKeys(t *testing.T) {
	seen := map[string]string{}
	for _, group := range Browse.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				owner, dup := seen[k]
				require.False(t, dup, "key %q bound to both %s and %s", k, owner, b.Help().Desc)
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestBrowse_ShortHelpIsSubsetOfFullHelp(t *testing.T) {
	full := map[string]bool{}
	for _, group := range Browse.FullHelp() {
		for _, b := range group {
			full[b.Help().Desc] = true
		}
	}
	for _, b := range Browse.ShortHelp() {
		require.True(t, full[b.Help().Desc], b.Help().Desc)
	}
}
