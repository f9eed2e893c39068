package analysis

import (
	"fmt"
	"strings"

	"github.com/san-kum/statplot/internal/figure"
)

// SpineLayout maps axes names to the spines expected to remain visible.
type SpineLayout map[string][]figure.Spine

// Layouts holds the spine pattern each demo kind leaves behind.
var Layouts = map[string]SpineLayout{
	"scatter": {
		"main":       nil,
		"x_marginal": {figure.Left},
		"y_marginal": {figure.Bottom},
	},
	"multivar": {
		"main": figure.AllSpines,
	},
}

// CheckSpines compares every axes in fig against want. It reports axes that
// are missing, unexpected, or whose visible spines differ.
func CheckSpines(fig *figure.Figure, want SpineLayout) error {
	var problems []string
	seen := make(map[string]bool)

	for _, ax := range fig.Axes() {
		seen[ax.Name] = true
		expected, ok := want[ax.Name]
		if !ok {
			problems = append(problems, fmt.Sprintf("unexpected axes %q", ax.Name))
			continue
		}
		got := ax.VisibleSpines()
		if !sameSpines(got, expected) {
			problems = append(problems, fmt.Sprintf("%s: spines %v, want %v", ax.Name, got, expected))
		}
	}
	for name := range want {
		if !seen[name] {
			problems = append(problems, fmt.Sprintf("missing axes %q", name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("analysis: spine check failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func sameSpines(a, b []figure.Spine) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[figure.Spine]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		if !set[s] {
			return false
		}
	}
	return true
}
