// ABOUTME: Submit command for the codementor CLI
// ABOUTME: Posts a solution and prints the server-judged submission record

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

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/store"
)

var (
	submitProblemID int64
	submitLanguage  string
	submitFile      string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a solution",
	Long: `Submit solution code for a problem. Code is read from --file, or from
stdin when --file is "-". The language is prompted for when --language is
omitted.

Exit codes:
  0 - Submission accepted by the server (judging may still be pending)
  1 - Submission rejected by the server
  2 - Error (connectivity, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSubmit(ctx, os.Stdin, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().Int64Var(&submitProblemID, "problem", 0, "Problem ID")
	submitCmd.Flags().StringVarP(&submitLanguage, "language", "l", "", "Language of the solution")
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", `Path to the solution file ("-" for stdin)`)
}

// promptLanguage asks for the solution language when the flag is omitted
func promptLanguage() error {
	if submitLanguage != "" {
		return nil
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Language").
			Options(huh.NewOptions("python", "javascript", "java", "cpp", "go")...).
			Value(&submitLanguage),
	)).Run()
}

// readSolutionCode loads the solution source from file or stdin
func readSolutionCode(stdin io.Reader) (string, error) {
	if submitFile == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(submitFile)
	if err != nil {
		return "", fmt.Errorf("failed to read solution file: %w", err)
	}
	return string(data), nil
}

// runSubmit posts the solution and returns exit code
func runSubmit(ctx context.Context, stdin io.Reader, w io.Writer) int {
	if submitProblemID == 0 || submitFile == "" {
		fmt.Fprintln(w, "Error: --problem and --file are required")
		return 2
	}

	if err := promptLanguage(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if submitLanguage == "" {
		fmt.Fprintln(w, "Error: language is required")
		return 2
	}

	code, err := readSolutionCode(stdin)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	catalog := store.NewCatalog(newAPIClient())
	err = catalog.SubmitSolution(ctx, client.SubmissionRequest{
		ProblemID: submitProblemID,
		Code:      code,
		Language:  submitLanguage,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeForError(err)
	}

	snap := catalog.Snapshot()
	sub := snap.Submissions[0]
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(sub, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatSubmissionHuman(sub))
	}
	return 0
}

// formatSubmissionHuman formats a submission record for human readability
func formatSubmissionHuman(sub client.Submission) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Submission #%d: %s\n", sub.ID, sub.ProblemTitle)
	fmt.Fprintf(&sb, "Status:   %s\n", sub.Status)
	fmt.Fprintf(&sb, "Language: %s\n", sub.Language)
	if sub.Runtime != nil {
		fmt.Fprintf(&sb, "Runtime:  %d ms\n", *sub.Runtime)
	}
	if sub.Memory != nil {
		fmt.Fprintf(&sb, "Memory:   %d KB\n", *sub.Memory)
	}
	if sub.ErrorMessage != "" {
		fmt.Fprintf(&sb, "Error:    %s\n", sub.ErrorMessage)
	}
	fmt.Fprintf(&sb, "Submitted: %s", sub.SubmittedAt)
	return sb.String()
}
