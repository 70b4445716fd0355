// ABOUTME: Login form as a bubbletea model wrapping a huh form
// ABOUTME: Emits SubmittedMsg with credentials or CancelledMsg on escape

package loginform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/codementor/cli/internal/tui/styles"
)

// SubmittedMsg is sent when the form completes
type SubmittedMsg struct {
	Username string
	Password string
}

// CancelledMsg is sent when the user backs out of the form
type CancelledMsg struct{}

// LoginForm collects credentials for the session store
type LoginForm struct {
	form     *huh.Form
	username string
	password string
	width    int
}

// New creates a login form
func New() *LoginForm {
	lf := &LoginForm{}
	lf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&lf.username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&lf.password),
		),
	).WithTheme(huh.ThemeBase())
	return lf
}

// Init implements the form startup
func (lf *LoginForm) Init() tea.Cmd {
	return lf.form.Init()
}

// SetWidth updates the rendered width
func (lf *LoginForm) SetWidth(width int) {
	lf.width = width
}

// Update routes messages into the form and reports completion
func (lf *LoginForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := lf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		lf.form = f
	}

	if lf.form.State == huh.StateCompleted {
		username, password := lf.username, lf.password
		return tea.Batch(cmd, func() tea.Msg {
			return SubmittedMsg{Username: username, Password: password}
		})
	}
	return cmd
}

// View renders the form inside a panel
func (lf *LoginForm) View() string {
	title := styles.Title.Render("Log in to codementor")
	help := styles.Help.Render("enter submit · esc skip")
	content := lipgloss.JoinVertical(lipgloss.Left, title, lf.form.View(), help)
	if lf.width > 0 {
		return styles.Panel.Width(lf.width).Render(content)
	}
	return styles.Panel.Render(content)
}
