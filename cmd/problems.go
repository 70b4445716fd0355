// ABOUTME: Problems command for the codementor CLI
// ABOUTME: Lists problems with optional difficulty and tag filters

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

var (
	problemsDifficulty string
	problemsTags       string
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List coding problems",
	Long:  `List problems, optionally filtered by difficulty (easy, medium, hard) and comma-separated tags.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProblems(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(problemsCmd)
	problemsCmd.Flags().StringVarP(&problemsDifficulty, "difficulty", "d", "", "Filter by difficulty")
	problemsCmd.Flags().StringVarP(&problemsTags, "tags", "t", "", "Filter by tags")
}

// runProblems fetches the problem list and returns exit code
func runProblems(ctx context.Context, w io.Writer) int {
	catalog := store.NewCatalog(newAPIClient())
	catalog.FetchProblems(ctx, client.ProblemFilters{
		Difficulty: problemsDifficulty,
		Tags:       problemsTags,
	})

	snap := catalog.Snapshot()
	if snap.Err != "" {
		fmt.Fprintf(w, "Error: %s\n", snap.Err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(snap.Problems, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatProblemsHuman(snap.Problems))
	}
	return 0
}

// formatProblemsHuman formats the problem list as an aligned table
func formatProblemsHuman(problems []client.Problem) string {
	if len(problems) == 0 {
		return "No problems found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-30s %-8s %-40s %s\n", "SLUG", "LEVEL", "TITLE", "TAGS")
	for _, p := range problems {
		fmt.Fprintf(&sb, "%-30s %-8s %-40s %s\n", p.Slug, p.Difficulty, p.Title, strings.Join(p.Tags, ","))
	}
	fmt.Fprintf(&sb, "\n%d problem(s)", len(problems))
	return sb.String()
}
