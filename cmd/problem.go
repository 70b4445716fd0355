// ABOUTME: Problem command for the codementor CLI
// ABOUTME: Shows a single problem by slug with examples and hints

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
	problemShowHints   bool
	problemShowStarter bool
)

var problemCmd = &cobra.Command{
	Use:   "problem <slug>",
	Short: "Show one problem",
	Long:  `Display a problem's description, examples, and constraints by its slug.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProblem(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(problemCmd)
	problemCmd.Flags().BoolVar(&problemShowHints, "hints", false, "Include hints")
	problemCmd.Flags().BoolVar(&problemShowStarter, "starter-code", false, "Include starter code")
}

// runProblem fetches one problem and returns exit code
func runProblem(ctx context.Context, w io.Writer, slug string) int {
	catalog := store.NewCatalog(newAPIClient())
	catalog.FetchProblem(ctx, slug)

	snap := catalog.Snapshot()
	if snap.Err != "" {
		fmt.Fprintf(w, "Error: %s\n", snap.Err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(snap.CurrentProblem, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatProblemHuman(snap.CurrentProblem))
	}
	return 0
}

// formatProblemHuman formats a full problem for human readability
func formatProblemHuman(p *client.Problem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]\n", p.Title, p.Difficulty)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(&sb, "\n%s\n", p.Description)

	for i, ex := range p.Examples {
		fmt.Fprintf(&sb, "\nExample %d:\n", i+1)
		fmt.Fprintf(&sb, "  Input:  %s\n", ex.Input)
		fmt.Fprintf(&sb, "  Output: %s\n", ex.Output)
		if ex.Explanation != "" {
			fmt.Fprintf(&sb, "  %s\n", ex.Explanation)
		}
	}

	if p.Constraints != "" {
		fmt.Fprintf(&sb, "\nConstraints:\n%s\n", p.Constraints)
	}

	if problemShowHints && len(p.Hints) > 0 {
		fmt.Fprintf(&sb, "\nHints:\n")
		for _, hint := range p.Hints {
			fmt.Fprintf(&sb, "  - %s\n", hint)
		}
	}

	if problemShowStarter && p.StarterCode != "" {
		fmt.Fprintf(&sb, "\nStarter code:\n%s\n", p.StarterCode)
	}

	return strings.TrimRight(sb.String(), "\n")
}
