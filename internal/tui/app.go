// ABOUTME: Root bubbletea model for the codementor dashboard
// ABOUTME: Routes input between screens and drives the stores via commands

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/debuglog"
	"github.com/codementor/cli/internal/store"
	"github.com/codementor/cli/internal/tui/loginform"
	"github.com/codementor/cli/internal/tui/problemlist"
	"github.com/codementor/cli/internal/tui/problemview"
	"github.com/codementor/cli/internal/tui/styles"
	"github.com/codementor/cli/internal/tui/submissionlist"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenProblems
	ScreenProblem
	ScreenSubmissions
)

// Layout constants
const (
	headerHeight = 2
	footerHeight = 3
)

// problemsFetchedMsg is sent when the problem list fetch completes
type problemsFetchedMsg struct{}

// problemFetchedMsg is sent when a single problem fetch completes
type problemFetchedMsg struct{}

// submissionsFetchedMsg is sent when the submission history fetch completes
type submissionsFetchedMsg struct{}

// healthCheckedMsg is sent when the health probe completes
type healthCheckedMsg struct{}

// profileFetchedMsg is sent when the session hydration completes
type profileFetchedMsg struct{}

// loggedInMsg is sent when a login attempt completes
type loggedInMsg struct {
	err error
}

// App is the root model for the TUI
type App struct {
	session *store.Session
	catalog *store.Catalog
	probe   *store.Probe

	screen  Screen
	width   int
	height  int
	spinner spinner.Model

	// Child models
	login          *loginform.LoginForm
	problemList    *problemlist.ProblemList
	problemView    *problemview.ProblemView
	submissionList *submissionlist.SubmissionList
}

// New creates the TUI application with its stores injected
func New(session *store.Session, catalog *store.Catalog, probe *store.Probe) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	screen := ScreenProblems
	var login *loginform.LoginForm
	if !session.Snapshot().Authenticated {
		screen = ScreenLogin
		login = loginform.New()
	}

	return &App{
		session:        session,
		catalog:        catalog,
		probe:          probe,
		screen:         screen,
		spinner:        sp,
		login:          login,
		problemList:    problemlist.New(),
		problemView:    problemview.New(),
		submissionList: submissionlist.New(),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, a.checkHealth(), a.fetchProblems()}
	if a.screen == ScreenLogin {
		cmds = append(cmds, a.login.Init())
	} else {
		cmds = append(cmds, a.fetchProfile(), a.fetchSubmissions())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.problemList.SetSize(msg.Width, a.contentHeight())
		a.problemView.SetSize(msg.Width, a.contentHeight())
		a.submissionList.SetSize(msg.Width, a.contentHeight())
		if a.login != nil {
			a.login.SetWidth(msg.Width - 4)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.screen == ScreenLogin {
			return a, a.login.Update(msg)
		}
		return a.updateKeys(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case loginform.SubmittedMsg:
		return a, a.doLogin(msg.Username, msg.Password)

	case loginform.CancelledMsg:
		// Browsing problems works without a session
		a.screen = ScreenProblems
		return a, nil

	case loggedInMsg:
		if msg.err != nil {
			debuglog.Error("login", msg.err)
			// Error text comes from the session snapshot; stay on the form
			a.login = loginform.New()
			return a, a.login.Init()
		}
		a.screen = ScreenProblems
		return a, tea.Batch(a.fetchSubmissions())

	case problemlist.SelectedMsg:
		a.screen = ScreenProblem
		return a, a.fetchProblem(msg.Slug)

	case problemsFetchedMsg:
		a.problemList.SetProblems(a.catalog.Snapshot().Problems)
		return a, nil

	case problemFetchedMsg:
		a.problemView.SetProblem(a.catalog.Snapshot().CurrentProblem)
		return a, nil

	case submissionsFetchedMsg:
		a.submissionList.SetSubmissions(a.catalog.Snapshot().Submissions)
		return a, nil

	case healthCheckedMsg, profileFetchedMsg:
		return a, nil

	default:
		// Forward unknown messages to the login form when active (needed for huh form internals)
		if a.screen == ScreenLogin && a.login != nil {
			return a, a.login.Update(msg)
		}
	}

	return a, nil
}

// updateKeys handles keyboard input outside the login screen
func (a *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "p":
		a.screen = ScreenProblems
		a.catalog.ClearError()
		return a, nil
	case "s":
		a.screen = ScreenSubmissions
		a.catalog.ClearError()
		return a, a.fetchSubmissions()
	case "r":
		return a, a.refreshCurrent()
	case "esc":
		if a.screen == ScreenProblem {
			a.screen = ScreenProblems
			return a, nil
		}
	}

	switch a.screen {
	case ScreenProblems:
		return a, a.problemList.Update(msg)
	case ScreenProblem:
		return a, a.problemView.Update(msg)
	case ScreenSubmissions:
		return a, a.submissionList.Update(msg)
	}
	return a, nil
}

// refreshCurrent re-fetches the data behind the active screen
func (a *App) refreshCurrent() tea.Cmd {
	switch a.screen {
	case ScreenProblems:
		return a.fetchProblems()
	case ScreenSubmissions:
		return a.fetchSubmissions()
	}
	return nil
}

// View implements tea.Model
func (a *App) View() string {
	var sb strings.Builder
	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")

	switch a.screen {
	case ScreenLogin:
		sb.WriteString(a.login.View())
	case ScreenProblems:
		sb.WriteString(a.problemList.View())
	case ScreenProblem:
		sb.WriteString(a.problemView.View())
	case ScreenSubmissions:
		sb.WriteString(a.submissionList.View())
	}

	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())
	return sb.String()
}

// renderHeader shows the app name, the signed-in user, and load state
func (a *App) renderHeader() string {
	session := a.session.Snapshot()

	left := styles.Title.Render("codementor")
	user := "not signed in"
	if session.Authenticated && session.User != nil {
		user = session.User.Username
	}

	right := styles.Subtitle.Render(user)
	if session.Loading || a.catalog.Snapshot().Loading {
		right = a.spinner.View() + " " + right
	}
	return left + "  " + right
}

// renderFooter shows errors, the health triad, and key help
func (a *App) renderFooter() string {
	var sb strings.Builder

	if msg := a.firstError(); msg != "" {
		sb.WriteString(styles.ErrorText.Render("Error: " + msg))
	}
	sb.WriteString("\n")

	sb.WriteString(a.renderHealth())
	sb.WriteString("  ")
	sb.WriteString(styles.Help.Render("p problems · s submissions · r refresh · q quit"))
	return sb.String()
}

// firstError surfaces whichever store error is set
func (a *App) firstError() string {
	if err := a.session.Snapshot().Err; err != "" {
		return err
	}
	if err := a.catalog.Snapshot().Err; err != "" {
		return err
	}
	return ""
}

// renderHealth shows the backend status triad from the probe
func (a *App) renderHealth() string {
	probe := a.probe.Snapshot()
	if probe.Loading {
		return styles.Subtitle.Render("health: checking…")
	}
	if probe.Err != "" {
		return styles.StatusCritical.Render("health: unreachable")
	}

	status := styles.StatusOK
	if probe.Health.Status != "healthy" {
		status = styles.StatusCritical
	}
	return fmt.Sprintf("%s %s",
		status.Render("● "+probe.Health.Status),
		styles.Subtitle.Render(fmt.Sprintf("db:%s cache:%s", probe.Health.Database, probe.Health.Cache)))
}

// contentHeight is the vertical space available for the active screen
func (a *App) contentHeight() int {
	h := a.height - headerHeight - footerHeight
	if h < 0 {
		return 0
	}
	return h
}

// checkHealth runs the one-shot health probe
func (a *App) checkHealth() tea.Cmd {
	return func() tea.Msg {
		a.probe.Check(context.Background())
		return healthCheckedMsg{}
	}
}

// fetchProblems loads the problem list through the catalog store
func (a *App) fetchProblems() tea.Cmd {
	return func() tea.Msg {
		a.catalog.FetchProblems(context.Background(), client.ProblemFilters{})
		return problemsFetchedMsg{}
	}
}

// fetchProblem loads one problem by slug
func (a *App) fetchProblem(slug string) tea.Cmd {
	return func() tea.Msg {
		a.catalog.FetchProblem(context.Background(), slug)
		return problemFetchedMsg{}
	}
}

// fetchSubmissions loads the submission history
func (a *App) fetchSubmissions() tea.Cmd {
	return func() tea.Msg {
		a.catalog.FetchSubmissions(context.Background())
		return submissionsFetchedMsg{}
	}
}

// fetchProfile hydrates the session from the stored token
func (a *App) fetchProfile() tea.Cmd {
	return func() tea.Msg {
		a.session.FetchProfile(context.Background())
		return profileFetchedMsg{}
	}
}

// doLogin runs the login flow through the session store
func (a *App) doLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		err := a.session.Login(context.Background(), username, password)
		return loggedInMsg{err: err}
	}
}

// Run starts the TUI
func Run(session *store.Session, catalog *store.Catalog, probe *store.Probe) error {
	app := New(session, catalog, probe)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
