package presentation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format outside Formats().
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how the Formatter renders
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML}
}

// ParseFormat validates s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format Format
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer, format Format) *Formatter {
	return &Formatter{
		writer: writer,
		format: format,
	}
}

// FormatParticles writes particle records
func (f *Formatter) FormatParticles(particles []ParticleDTO) error {
	if f.format != FormatTable {
		return f.encode(particles)
	}

	rows := make([][]string, len(particles))
	for i, p := range particles {
		rows[i] = ParticleRow(p)
	}
	return f.table(ParticleColumns(), rows)
}

// FormatTaxonomy writes category memberships
func (f *Formatter) FormatTaxonomy(categories []TaxonomyDTO) error {
	if f.format != FormatTable {
		return f.encode(categories)
	}

	rows := make([][]string, len(categories))
	for i, c := range categories {
		members := strings.Join(c.Symbols, " ")
		if members == "" {
			members = "(empty)"
		}
		rows[i] = []string{c.Category, strconv.Itoa(len(c.Symbols)), members}
	}
	return f.table([]string{"CATEGORY", "COUNT", "SYMBOLS"}, rows)
}

// FormatDifferences writes registry differences
func (f *Formatter) FormatDifferences(diffs []DifferenceDTO) error {
	if f.format != FormatTable {
		return f.encode(diffs)
	}
	if len(diffs) == 0 {
		_, err := fmt.Fprintln(f.writer, "no differences")
		return err
	}

	rows := make([][]string, len(diffs))
	for i, d := range diffs {
		rows[i] = []string{d.Symbol, d.Field, d.From, d.To}
	}
	return f.table([]string{"SYMBOL", "FIELD", "FROM", "TO"}, rows)
}

// FormatReleases writes the available constants releases
func (f *Formatter) FormatReleases(releases []ReleaseDTO) error {
	if f.format != FormatTable {
		return f.encode(releases)
	}

	rows := make([][]string, len(releases))
	for i, r := range releases {
		name := r.Release
		if r.Current {
			name += " *"
		}
		rows[i] = []string{name, kilograms(r.ElectronMass), kilograms(r.ProtonMass), kilograms(r.NeutronMass)}
	}
	return f.table([]string{"RELEASE", "ELECTRON", "PROTON", "NEUTRON"}, rows)
}

// FormatSnapshots writes exported snapshot summaries
func (f *Formatter) FormatSnapshots(snapshots []SnapshotDTO) error {
	if f.format != FormatTable {
		return f.encode(snapshots)
	}
	if len(snapshots) == 0 {
		_, err := fmt.Fprintln(f.writer, "no snapshots")
		return err
	}

	rows := make([][]string, len(snapshots))
	for i, s := range snapshots {
		rows[i] = []string{s.ID, s.Release, strconv.Itoa(s.Particles), s.CreatedAt.Format(time.RFC3339)}
	}
	return f.table([]string{"ID", "RELEASE", "PARTICLES", "CREATED"}, rows)
}

func kilograms(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + " kg"
}

func (f *Formatter) encode(v any) error {
	switch f.format {
	case FormatJSON:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(f.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f.format)
	}
}

func (f *Formatter) table(headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(f.writer, t.Render())
	return err
}

// ParticleColumns are the table headings for particle rows.
func ParticleColumns() []string {
	return []string{"SYMBOL", "NAME", "CLASS", "SPIN", "Q", "L", "B", "GEN", "MASS", "HALF-LIFE", "ANTI"}
}

func generationCell(g *int) string {
	if g == nil {
		return "-"
	}
	return strconv.Itoa(*g)
}

// MassCell renders a mass for a table cell.
func MassCell(m MassDTO) string {
	if m.Unknown || m.Value == nil {
		return "unknown"
	}
	return strconv.FormatFloat(*m.Value, 'g', -1, 64) + " " + m.Unit
}

// HalfLifeCell renders a half-life for a table cell.
func HalfLifeCell(h HalfLifeDTO) string {
	if h.Stable || h.Value == nil {
		return "stable"
	}
	return strconv.FormatFloat(*h.Value, 'g', -1, 64) + " " + h.Unit
}

// ParticleRow is the table row for p, matching ParticleColumns.
func ParticleRow(p ParticleDTO) []string {
	return []string{
		p.Symbol,
		p.Name,
		p.Class,
		p.Spin,
		strconv.Itoa(p.Charge),
		strconv.Itoa(p.LeptonNumber),
		strconv.Itoa(p.BaryonNumber),
		generationCell(p.Generation),
		MassCell(p.Mass),
		HalfLifeCell(p.HalfLife),
		strconv.FormatBool(p.Antimatter),
	}
}
