// ABOUTME: Problem detail screen rendered inside a scrollable viewport
// ABOUTME: Shows description, examples, constraints, and hints

package problemview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/tui/styles"
)

// ProblemView displays one problem's full content
type ProblemView struct {
	problem  *client.Problem
	viewport viewport.Model
	ready    bool
}

// New creates an empty problem view
func New() *ProblemView {
	return &ProblemView{}
}

// SetProblem replaces the displayed problem and resets scroll position
func (pv *ProblemView) SetProblem(problem *client.Problem) {
	pv.problem = problem
	if pv.ready {
		pv.viewport.SetContent(pv.renderContent())
		pv.viewport.GotoTop()
	}
}

// SetSize updates the viewport dimensions
func (pv *ProblemView) SetSize(width, height int) {
	if !pv.ready {
		pv.viewport = viewport.New(width, height)
		pv.ready = true
	} else {
		pv.viewport.Width = width
		pv.viewport.Height = height
	}
	if pv.problem != nil {
		pv.viewport.SetContent(pv.renderContent())
	}
}

// Update forwards scroll keys to the viewport
func (pv *ProblemView) Update(msg tea.Msg) tea.Cmd {
	if !pv.ready {
		return nil
	}
	var cmd tea.Cmd
	pv.viewport, cmd = pv.viewport.Update(msg)
	return cmd
}

// View renders the viewport
func (pv *ProblemView) View() string {
	if pv.problem == nil {
		return styles.Subtitle.Render("No problem selected")
	}
	if !pv.ready {
		return pv.renderContent()
	}
	return pv.viewport.View()
}

// renderContent builds the scrollable problem text
func (pv *ProblemView) renderContent() string {
	p := pv.problem
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(p.Title))
	sb.WriteString("  ")
	sb.WriteString(styles.Difficulty(p.Difficulty))
	sb.WriteString("\n")
	if len(p.Tags) > 0 {
		sb.WriteString(styles.Subtitle.Render(strings.Join(p.Tags, " · ")))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(p.Description)
	sb.WriteString("\n")

	for i, ex := range p.Examples {
		sb.WriteString(fmt.Sprintf("\nExample %d:\n", i+1))
		sb.WriteString(fmt.Sprintf("  Input:  %s\n", ex.Input))
		sb.WriteString(fmt.Sprintf("  Output: %s\n", ex.Output))
		if ex.Explanation != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", ex.Explanation))
		}
	}

	if p.Constraints != "" {
		sb.WriteString("\nConstraints:\n")
		sb.WriteString(p.Constraints)
		sb.WriteString("\n")
	}

	if len(p.Hints) > 0 {
		sb.WriteString("\nHints:\n")
		for _, hint := range p.Hints {
			sb.WriteString("  - " + hint + "\n")
		}
	}

	if p.StarterCode != "" {
		sb.WriteString("\nStarter code:\n")
		sb.WriteString(p.StarterCode)
		sb.WriteString("\n")
	}

	return sb.String()
}
