package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one demo and returns the text to show beneath the menu.
type RenderFunc func(kind string, seed int64) (string, error)

type renderedMsg struct {
	kind   string
	seed   int64
	output string
	err    error
}

type Picker struct {
	kinds        []string
	descriptions map[string]string
	cursor       int
	seed         int64
	render       RenderFunc

	rendering bool
	output    string
	err       error
}

func NewPicker(kinds []string, descriptions map[string]string, seed int64, render RenderFunc) *Picker {
	return &Picker{
		kinds:        kinds,
		descriptions: descriptions,
		seed:         seed,
		render:       render,
	}
}

func (p *Picker) Selected() string {
	if len(p.kinds) == 0 {
		return ""
	}
	return p.kinds[p.cursor]
}

func (p *Picker) Seed() int64 { return p.seed }

func (p *Picker) Init() tea.Cmd { return nil }

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)
	case renderedMsg:
		p.rendering = false
		p.output, p.err = msg.output, msg.err
	}
	return p, nil
}

func (p *Picker) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.kinds)-1 {
			p.cursor++
		}
	case "left", "h":
		p.seed--
	case "right", "l":
		p.seed++
	case "r":
		p.seed = time.Now().UnixNano() % 1_000_000
	case "enter", " ":
		if p.rendering || len(p.kinds) == 0 {
			return p, nil
		}
		p.rendering = true
		return p, p.renderCmd(p.Selected(), p.seed)
	}
	return p, nil
}

func (p *Picker) renderCmd(kind string, seed int64) tea.Cmd {
	render := p.render
	return func() tea.Msg {
		out, err := render(kind, seed)
		return renderedMsg{kind: kind, seed: seed, output: out, err: err}
	}
}

func (p *Picker) View() string {
	var b strings.Builder
	b.WriteString("\n  " + Title.Render("STATPLOT") + "\n  " + Subtle.Render("statistical demo plots") + "\n  " + Subtle.Render(strings.Repeat("─", 25)) + "\n\n")

	for i, kind := range p.kinds {
		if i == p.cursor {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", Selected.Render("▸"), Value.Render(fmt.Sprintf("%-10s", kind)), Label.Render(p.descriptions[kind])))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", Subtle.Render(fmt.Sprintf("%-10s", kind)), Subtle.Render(p.descriptions[kind])))
		}
	}

	b.WriteString(fmt.Sprintf("\n  %s %s\n", Label.Render("seed"), Value.Render(fmt.Sprintf("%d", p.seed))))
	b.WriteString("\n  " + KeyHint.Render("j/k kind  h/l seed  r random  enter render  q quit") + "\n")

	switch {
	case p.rendering:
		b.WriteString("\n  " + Subtle.Render("rendering...") + "\n")
	case p.err != nil:
		b.WriteString("\n  " + ErrorMsg.Render(p.err.Error()) + "\n")
	case p.output != "":
		b.WriteString("\n" + p.output + "\n")
	}
	return b.String()
}

// RunPicker runs the picker full screen until the user quits.
func RunPicker(p *Picker) error {
	_, err := tea.NewProgram(p, tea.WithAltScreen()).Run()
	return err
}
