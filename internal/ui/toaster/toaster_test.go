package toaster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m := New().Show("reloaded", StyleSuccess)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "reloaded")
}

func TestHide(t *testing.T) {
	m := New().Show("reloaded", StyleSuccess).Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().
		Show("First", StyleSuccess).
		Show("Second", StyleError)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Second")
	assert.NotContains(t, m.View(), "First")
}

func TestView_EmptyWhenMessageEmpty(t *testing.T) {
	m := Model{visible: true, message: ""}

	assert.Empty(t, m.View())
}

func TestView_Styles(t *testing.T) {
	ok := New().Show("reloaded", StyleSuccess).View()
	assert.Contains(t, ok, "✅")
	assert.Contains(t, ok, "╭")

	failed := New().Show("reload failed", StyleError).View()
	assert.Contains(t, failed, "❌")
	assert.Contains(t, failed, "reload failed")
}

func TestScheduleDismiss(t *testing.T) {
	cmd := ScheduleDismiss(time.Millisecond)

	assert.IsType(t, DismissMsg{}, cmd())
}
