// ABOUTME: Register command for the codementor CLI
// ABOUTME: Creates an account and persists the returned token pair

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

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/store"
)

var (
	registerUsername        string
	registerEmail           string
	registerPassword        string
	registerPasswordConfirm string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create an account and log in with the returned token pair.

The password confirmation is forwarded to the server as-is; the server
checks that the two passwords match.

Exit codes:
  0 - Account created
  1 - Registration rejected by the server
  2 - Error (connectivity, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Username")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerPasswordConfirm, "password-confirm", "", "Password confirmation (prompted when omitted)")
}

// promptRegister collects missing registration fields interactively
func promptRegister() error {
	var fields []huh.Field
	if registerUsername == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(&registerUsername))
	}
	if registerEmail == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(&registerEmail))
	}
	if registerPassword == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&registerPassword))
	}
	if registerPasswordConfirm == "" {
		fields = append(fields, huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&registerPasswordConfirm))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// runRegister executes the registration flow and returns exit code
func runRegister(ctx context.Context, w io.Writer) int {
	if err := promptRegister(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if registerUsername == "" || registerEmail == "" {
		fmt.Fprintln(w, "Error: username and email are required")
		return 2
	}

	session := store.NewSession(newAPIClient())
	err := session.Register(ctx, client.RegisterRequest{
		Username:        registerUsername,
		Email:           registerEmail,
		Password:        registerPassword,
		PasswordConfirm: registerPasswordConfirm,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeForError(err)
	}

	snap := session.Snapshot()
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(snap.User, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Registered and logged in as %s (%s)\n", snap.User.Username, snap.User.Email)
	}
	return 0
}
