// ABOUTME: Problem list screen with cursor selection and title filtering
// ABOUTME: Emits SelectedMsg with the chosen problem's slug

package problemlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/tui/styles"
)

// SelectedMsg is sent when a problem is chosen
type SelectedMsg struct {
	Slug string
}

// ProblemList displays the catalog's problem listing
type ProblemList struct {
	problems []client.Problem
	cursor   int
	filter   textinput.Model
	width    int
	height   int
}

// New creates an empty problem list
func New() *ProblemList {
	filter := textinput.New()
	filter.Placeholder = "filter by title"
	filter.Prompt = "/ "
	filter.CharLimit = 64
	return &ProblemList{filter: filter}
}

// SetProblems replaces the displayed problems, keeping the cursor in range
func (pl *ProblemList) SetProblems(problems []client.Problem) {
	pl.problems = problems
	if pl.cursor >= len(pl.visible()) {
		pl.cursor = 0
	}
}

// SetSize updates the list dimensions
func (pl *ProblemList) SetSize(width, height int) {
	pl.width = width
	pl.height = height
}

// visible returns the problems matching the current filter text.
// Filtering here is display-only; server-side filters go through the
// catalog store.
func (pl *ProblemList) visible() []client.Problem {
	query := strings.ToLower(strings.TrimSpace(pl.filter.Value()))
	if query == "" {
		return pl.problems
	}
	var matched []client.Problem
	for _, p := range pl.problems {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Slug), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Update handles navigation and filter input
func (pl *ProblemList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if pl.filter.Focused() {
		switch key.String() {
		case "esc":
			pl.filter.Blur()
			pl.filter.SetValue("")
			pl.cursor = 0
		case "enter":
			pl.filter.Blur()
		default:
			var cmd tea.Cmd
			pl.filter, cmd = pl.filter.Update(msg)
			pl.cursor = 0
			return cmd
		}
		return nil
	}

	visible := pl.visible()
	switch key.String() {
	case "up", "k":
		if pl.cursor > 0 {
			pl.cursor--
		}
	case "down", "j":
		if pl.cursor < len(visible)-1 {
			pl.cursor++
		}
	case "/":
		pl.filter.Focus()
		return textinput.Blink
	case "enter":
		if pl.cursor < len(visible) {
			slug := visible[pl.cursor].Slug
			return func() tea.Msg { return SelectedMsg{Slug: slug} }
		}
	}
	return nil
}

// View renders the problem rows
func (pl *ProblemList) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Problems"))
	sb.WriteString("\n")

	if pl.filter.Focused() || pl.filter.Value() != "" {
		sb.WriteString(pl.filter.View())
		sb.WriteString("\n\n")
	}

	visible := pl.visible()
	if len(visible) == 0 {
		sb.WriteString(styles.Subtitle.Render("No problems to show"))
		return sb.String()
	}

	for i, p := range visible {
		row := fmt.Sprintf("%-8s %-36s %s", p.Difficulty, truncate(p.Title, 36), strings.Join(p.Tags, ","))
		if i == pl.cursor {
			sb.WriteString(styles.Selected.Render("> " + row))
		} else {
			sb.WriteString(fmt.Sprintf("  %-8s %-36s %s",
				styles.Difficulty(p.Difficulty), truncate(p.Title, 36),
				styles.Subtitle.Render(strings.Join(p.Tags, ","))))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
