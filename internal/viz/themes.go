package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for terminal output
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeSeaborn = Theme{
		Name:      "seaborn",
		Primary:   lipgloss.Color("#4c72b0"), // deep blue
		Secondary: lipgloss.Color("#55a868"), // deep green
		Accent:    lipgloss.Color("#dd8452"),
		Text:      lipgloss.Color("#eaeaf2"),
		Muted:     lipgloss.Color("#8c8c8c"),
		Error:     lipgloss.Color("#c44e52"),
	}

	ThemeGreen = Theme{
		Name:      "green",
		Primary:   lipgloss.Color("#98fb98"), // palegreen
		Secondary: lipgloss.Color("#3c8d3c"),
		Accent:    lipgloss.Color("#ccffcc"),
		Text:      lipgloss.Color("#e6ffe6"),
		Muted:     lipgloss.Color("#4d664d"),
		Error:     lipgloss.Color("#ff5555"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Error:     lipgloss.Color("#ff0000"),
	}

	CurrentTheme = ThemeSeaborn

	Themes = []Theme{
		ThemeSeaborn,
		ThemeGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to seaborn.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSeaborn
}

// SetTheme changes the current theme and rebuilds the shared styles.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
	applyTheme(CurrentTheme)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
