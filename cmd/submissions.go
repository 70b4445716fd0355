// ABOUTME: Submissions command for the codementor CLI
// ABOUTME: Lists the current user's submissions in server order

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/store"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List your submissions",
	Long:  `List the current user's submissions, most recent first as returned by the server.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSubmissions(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(submissionsCmd)
}

// runSubmissions fetches the submission history and returns exit code
func runSubmissions(ctx context.Context, w io.Writer) int {
	catalog := store.NewCatalog(newAPIClient())
	catalog.FetchSubmissions(ctx)

	snap := catalog.Snapshot()
	if snap.Err != "" {
		fmt.Fprintf(w, "Error: %s\n", snap.Err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(snap.Submissions, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatSubmissionsHuman(snap.Submissions))
	}
	return 0
}

// formatSubmissionsHuman formats the submission list as an aligned table
func formatSubmissionsHuman(subs []client.Submission) string {
	if len(subs) == 0 {
		return "No submissions yet"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-6s %-30s %-12s %-10s %s\n", "ID", "PROBLEM", "STATUS", "LANGUAGE", "SUBMITTED")
	for _, s := range subs {
		fmt.Fprintf(&sb, "%-6d %-30s %-12s %-10s %s\n", s.ID, s.ProblemTitle, s.Status, s.Language, s.SubmittedAt)
	}
	fmt.Fprintf(&sb, "\n%d submission(s)", len(subs))
	return sb.String()
}
