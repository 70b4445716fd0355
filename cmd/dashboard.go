// ABOUTME: Dashboard command for the codementor CLI
// ABOUTME: Launches the interactive TUI problem browser

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codementor/cli/internal/debuglog"
	"github.com/codementor/cli/internal/store"
	"github.com/codementor/cli/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the full-screen TUI for browsing problems and viewing submission
history. Solutions are submitted with "codementor submit".`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := debuglog.Init(GetConfigDir()); err != nil {
			// TUI still works without a debug log
			fmt.Fprintf(os.Stderr, "warning: debug log disabled: %v\n", err)
		}
		defer debuglog.Close()

		c := newAPIClient()
		session := store.NewSession(c)
		catalog := store.NewCatalog(c)
		probe := store.NewProbe(c)

		if err := tui.Run(session, catalog, probe); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
