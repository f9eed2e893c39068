package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel    lipgloss.Style
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	KeyHint  lipgloss.Style
	ErrorMsg lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 2)
	Title = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	Label = lipgloss.NewStyle().Foreground(t.Muted)
	Value = lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	KeyHint = lipgloss.NewStyle().Italic(true).Foreground(t.Muted)
	ErrorMsg = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
}

// Field is one labelled line of a summary panel.
type Field struct {
	Label string
	Value string
}

// Summary renders a titled panel of fields followed by stats sorted by name.
func Summary(title string, fields []Field, stats map[string]float64) string {
	var b strings.Builder
	b.WriteString(Title.Render(title))
	b.WriteString("\n")

	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}
	for name := range stats {
		width = max(width, len(name))
	}

	for _, f := range fields {
		b.WriteString(fmt.Sprintf("%s  %s\n", Label.Render(fmt.Sprintf("%-*s", width, f.Label)), Value.Render(f.Value)))
	}

	if len(stats) > 0 {
		names := make([]string, 0, len(stats))
		for name := range stats {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString(Subtle.Render(strings.Repeat("─", width+12)))
		b.WriteString("\n")
		for _, name := range names {
			b.WriteString(fmt.Sprintf("%s  %s\n", Label.Render(fmt.Sprintf("%-*s", width, name)), Value.Render(fmt.Sprintf("%.6f", stats[name]))))
		}
	}

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}
