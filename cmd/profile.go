// ABOUTME: Profile command for the codementor CLI
// ABOUTME: Partial updates of bio and avatar URL via PATCH

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
)

var (
	profileBio       string
	profileAvatarURL string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the current user's profile",
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long:  `Apply a partial update to the current profile. Only the given flags are sent.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		var update client.ProfileUpdate
		if cmd.Flags().Changed("bio") {
			update.Bio = &profileBio
		}
		if cmd.Flags().Changed("avatar-url") {
			update.AvatarURL = &profileAvatarURL
		}

		exitCode := runProfileUpdate(ctx, os.Stdout, update)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "Profile bio")
	profileUpdateCmd.Flags().StringVar(&profileAvatarURL, "avatar-url", "", "Avatar image URL")
}

// runProfileUpdate applies the update and returns exit code
func runProfileUpdate(ctx context.Context, w io.Writer, update client.ProfileUpdate) int {
	if update.Bio == nil && update.AvatarURL == nil {
		fmt.Fprintln(w, "Error: nothing to update (use --bio or --avatar-url)")
		return 2
	}

	c := newAPIClient()
	user, err := c.UpdateProfile(ctx, update)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeForError(err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatUserHuman(user))
	}
	return 0
}

// formatUserHuman formats a user profile for human readability
func formatUserHuman(user *client.User) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Username: %s\n", user.Username)
	fmt.Fprintf(&sb, "Email:    %s\n", user.Email)
	if user.Bio != "" {
		fmt.Fprintf(&sb, "Bio:      %s\n", user.Bio)
	}
	if user.AvatarURL != "" {
		fmt.Fprintf(&sb, "Avatar:   %s\n", user.AvatarURL)
	}
	fmt.Fprintf(&sb, "Joined:   %s", user.CreatedAt)
	return sb.String()
}
