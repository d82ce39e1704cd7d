// Package browse provides the interactive particle table.
package browse

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/particlezoo/internal/keys"
	"github.com/zjrosen/particlezoo/internal/presentation"
	"github.com/zjrosen/particlezoo/internal/pubsub"
	"github.com/zjrosen/particlezoo/internal/ui/toaster"
)

const (
	allFilter = "all"

	// detailWrap is the width of the value column in the detail pane.
	detailWrap = 28
)

// Reload is the payload of a registry reload event. Err is set on
// ReloadFailedEvent.
type Reload struct {
	Title     string
	Particles []presentation.ParticleDTO
	Err       string
}

// Model holds the browser state.
type Model struct {
	title     string
	particles []presentation.ParticleDTO
	filters   []string // allFilter followed by category names
	filter    int
	visible   []presentation.ParticleDTO
	table     table.Model
	help      help.Model
	toast     toaster.Model
	details   bool
	status    string
	width     int
	height    int

	ctx     context.Context
	reloads <-chan pubsub.Event[Reload]
}

// New creates a browser over particles. categories are offered as filters in
// the given order.
func New(title string, particles []presentation.ParticleDTO, categories []string) Model {
	columns := make([]table.Column, 0, len(presentation.ParticleColumns()))
	for _, heading := range presentation.ParticleColumns() {
		columns = append(columns, table.Column{Title: heading, Width: columnWidth(heading)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(particles)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(borderColor).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(selectedColor).Bold(true)
	t.SetStyles(s)

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpStyle

	m := Model{
		title:     title,
		particles: particles,
		filters:   append([]string{allFilter}, categories...),
		table:     t,
		help:      h,
		toast:     toaster.New(),
	}
	return m.applyFilter()
}

// WithReloads makes the browser replace its records whenever an event
// arrives on reloads, until ctx is done.
func (m Model) WithReloads(ctx context.Context, reloads <-chan pubsub.Event[Reload]) Model {
	m.ctx = ctx
	m.reloads = reloads
	return m
}

func columnWidth(heading string) int {
	switch heading {
	case "NAME":
		return 22
	case "MASS", "HALF-LIFE":
		return 20
	case "SYMBOL", "CLASS":
		return 12
	default:
		return len(heading) + 2
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) listen() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	return pubsub.ListenCmd(m.ctx, m.reloads)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m.resize(), nil

	case pubsub.Event[Reload]:
		switch msg.Type {
		case pubsub.ReloadedEvent:
			m.title = msg.Payload.Title
			m.particles = msg.Payload.Particles
			m.status = "reloaded " + msg.Timestamp.Format("15:04:05")
			m.toast = m.toast.Show(m.status, toaster.StyleSuccess)
			m = m.applyFilter()
		case pubsub.ReloadFailedEvent:
			m.status = "reload failed: " + msg.Payload.Err
			m.toast = m.toast.Show(m.status, toaster.StyleError)
		}
		return m.resize(), tea.Batch(m.listen(), toaster.ScheduleDismiss(toaster.DefaultDuration))

	case toaster.DismissMsg:
		m.toast = m.toast.Hide()
		return m.resize(), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Browse.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Browse.NextFilter):
			m.filter = (m.filter + 1) % len(m.filters)
			return m.applyFilter(), nil
		case key.Matches(msg, keys.Browse.PrevFilter):
			m.filter = (m.filter - 1 + len(m.filters)) % len(m.filters)
			return m.applyFilter(), nil
		case key.Matches(msg, keys.Browse.Details):
			m.details = !m.details
			return m, nil
		case key.Matches(msg, keys.Browse.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m.resize(), nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// resize fits the table between the title, filter bar, toast and help.
func (m Model) resize() Model {
	if m.height == 0 {
		return m
	}
	chrome := 3 + lipgloss.Height(m.help.View(keys.Browse))
	if m.toast.Visible() {
		chrome += lipgloss.Height(m.toast.View())
	}
	m.table.SetHeight(max(m.height-chrome, 3))
	return m
}

// applyFilter recomputes the visible rows and resets the cursor.
func (m Model) applyFilter() Model {
	filter := m.filters[m.filter]
	m.visible = m.visible[:0:0]
	for _, p := range m.particles {
		if filter == allFilter || slices.Contains(p.Categories, filter) {
			m.visible = append(m.visible, p)
		}
	}

	rows := make([]table.Row, len(m.visible))
	for i, p := range m.visible {
		rows[i] = table.Row(presentation.ParticleRow(p))
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
	return m
}

// Filter returns the active category filter ("all" when unfiltered).
func (m Model) Filter() string {
	return m.filters[m.filter]
}

// Visible returns the rows shown under the current filter.
func (m Model) Visible() []presentation.ParticleDTO {
	return m.visible
}

// Selected returns the particle under the cursor.
func (m Model) Selected() (presentation.ParticleDTO, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return presentation.ParticleDTO{}, false
	}
	return m.visible[i], true
}

// ShowingDetails reports whether the detail pane is open.
func (m Model) ShowingDetails() bool {
	return m.details
}

// Status is the last reload outcome, empty before the first reload.
func (m Model) Status() string {
	return m.status
}

// View renders the browser.
func (m Model) View() string {
	var sb strings.Builder
	title := titleStyle.Render(fmt.Sprintf("%s (%d/%d)", m.title, len(m.visible), len(m.particles)))
	if m.width > 0 {
		title = ansi.Truncate(title, m.width, "…")
	}
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(m.filterBar())
	sb.WriteString("\n")

	body := m.table.View()
	if m.details {
		if p, ok := m.Selected(); ok {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", detailView(p))
		}
	}
	sb.WriteString(body)
	if m.toast.Visible() {
		sb.WriteString("\n")
		sb.WriteString(m.toast.View())
	}
	sb.WriteString("\n ")
	sb.WriteString(m.help.View(keys.Browse))
	return sb.String()
}

func (m Model) filterBar() string {
	parts := make([]string, len(m.filters))
	for i, f := range m.filters {
		if i == m.filter {
			parts[i] = activeFilter.Render(f)
		} else {
			parts[i] = filterStyle.Render(f)
		}
	}
	return " " + strings.Join(parts, filterStyle.Render(" | "))
}

func detailView(p presentation.ParticleDTO) string {
	name := p.Name
	if p.Antimatter {
		name = antiStyle.Render(name)
	}
	lines := []string{
		labelStyle.Render("symbol") + p.Symbol,
		labelStyle.Render("name") + name,
		labelStyle.Render("class") + p.Class,
		labelStyle.Render("spin") + p.Spin,
		labelStyle.Render("charge") + fmt.Sprintf("%+d", p.Charge),
		labelStyle.Render("L / B") + fmt.Sprintf("%d / %d", p.LeptonNumber, p.BaryonNumber),
		labelStyle.Render("mass") + presentation.MassCell(p.Mass),
		labelStyle.Render("half-life") + presentation.HalfLifeCell(p.HalfLife),
		labelStyle.Render("categories") + indent(wordwrap.String(strings.Join(p.Categories, ", "), detailWrap)),
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}

// indent aligns continuation lines of a wrapped value under its first line.
func indent(s string) string {
	pad := strings.Repeat(" ", labelStyle.GetWidth())
	return strings.ReplaceAll(s, "\n", "\n"+pad)
}
