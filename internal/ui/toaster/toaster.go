// Package toaster renders short-lived notifications.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleSuccess shows ✅ with a green border.
	StyleSuccess Style = iota
	// StyleError shows ❌ with a red border.
	StyleError
)

// DefaultDuration is how long a toast stays up before ScheduleDismiss fires.
const DefaultDuration = 3 * time.Second

var (
	successColor = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}
)

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays message, replacing any toast already up.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// View renders the toast box, or "" when hidden.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	if m.style == StyleError {
		return style.BorderForeground(errorColor).Render("❌ " + m.message)
	}
	return style.BorderForeground(successColor).Render("✅ " + m.message)
}

// DismissMsg signals that the toast should be dismissed.
type DismissMsg struct{}

// ScheduleDismiss returns a command that dismisses the toast after d.
func ScheduleDismiss(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{}
	})
}
