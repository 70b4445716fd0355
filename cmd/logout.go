// ABOUTME: Logout command for the codementor CLI
// ABOUTME: Removes the persisted token pair; no backend call involved

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/codementor/cli/internal/store"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and remove stored tokens",
	Long:  `Remove the locally persisted token pair. Cached problem data is not touched.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the session and returns exit code
func runLogout(w io.Writer) int {
	session := store.NewSession(newAPIClient())
	if err := session.Logout(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, "Logged out")
	return 0
}
