// ABOUTME: Whoami command for the codementor CLI
// ABOUTME: Hydrates the session from the stored token and prints the profile

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codementor/cli/internal/store"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	Long:  `Fetch and display the profile for the stored access token.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami fetches the profile and returns exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	session := store.NewSession(newAPIClient())
	session.FetchProfile(ctx)

	snap := session.Snapshot()
	if snap.Err != "" {
		fmt.Fprintf(w, "Error: %s\n", snap.Err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(snap.User, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatUserHuman(snap.User))
	}
	return 0
}
