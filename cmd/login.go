// ABOUTME: Login command for the codementor CLI
// ABOUTME: Exchanges credentials for a token pair and hydrates the profile

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/codementor/cli/internal/store"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the platform",
	Long: `Log in with a username and password, persisting the token pair locally.

Missing credentials are prompted for interactively.

Exit codes:
  0 - Logged in
  1 - Credentials rejected by the server
  2 - Error (connectivity, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")
}

// promptLogin collects missing credentials interactively
func promptLogin() error {
	var fields []huh.Field
	if loginUsername == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(&loginUsername))
	}
	if loginPassword == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&loginPassword))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// runLogin executes the login flow and returns exit code
func runLogin(ctx context.Context, w io.Writer) int {
	if err := promptLogin(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if loginUsername == "" {
		fmt.Fprintln(w, "Error: username is required")
		return 2
	}

	session := store.NewSession(newAPIClient())
	if err := session.Login(ctx, loginUsername, loginPassword); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeForError(err)
	}

	snap := session.Snapshot()
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(snap.User, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Logged in as %s (%s)\n", snap.User.Username, snap.User.Email)
	}
	return 0
}
