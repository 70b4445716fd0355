// ABOUTME: Submission history screen backed by a bubbles table
// ABOUTME: Rows stay in server order, most recent first

package submissionlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/tui/styles"
)

// SubmissionList displays the catalog's submission history
type SubmissionList struct {
	table table.Model
	count int
}

// New creates an empty submission list
func New() *SubmissionList {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Problem", Width: 30},
		{Title: "Status", Width: 12},
		{Title: "Language", Width: 10},
		{Title: "Submitted", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(styles.Primary)
	s.Selected = s.Selected.Foreground(styles.Text).Background(styles.Primary)
	t.SetStyles(s)

	return &SubmissionList{table: t}
}

// SetSubmissions replaces the table rows with the server-ordered result
func (sl *SubmissionList) SetSubmissions(subs []client.Submission) {
	rows := make([]table.Row, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", s.ID),
			s.ProblemTitle,
			s.Status,
			s.Language,
			s.SubmittedAt,
		})
	}
	sl.table.SetRows(rows)
	sl.count = len(subs)
}

// SetSize updates the table dimensions
func (sl *SubmissionList) SetSize(width, height int) {
	sl.table.SetWidth(width)
	sl.table.SetHeight(height)
}

// Update forwards navigation keys to the table
func (sl *SubmissionList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	sl.table, cmd = sl.table.Update(msg)
	return cmd
}

// View renders the submission table
func (sl *SubmissionList) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Submissions"))
	sb.WriteString("\n")
	if sl.count == 0 {
		sb.WriteString(styles.Subtitle.Render("No submissions yet"))
		return sb.String()
	}
	sb.WriteString(sl.table.View())
	return sb.String()
}
