// ABOUTME: Health command for the codementor CLI
// ABOUTME: Checks backend connectivity and the service status triad

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

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/store"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the codementor backend and report service, database, and cache status.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	probe := store.NewProbe(client.New(url, nil))
	probe.Check(ctx)

	snap := probe.Snapshot()
	if snap.Err != "" {
		fmt.Fprintf(w, "Error: %s\n", snap.Err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, snap.Health))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, snap.Health))
	}
	return 0
}

// formatHealthHuman formats the health triad for human readability
func formatHealthHuman(url string, health *client.HealthStatus) string {
	return fmt.Sprintf(`Backend:  %s
Status:   %s
Database: %s
Cache:    %s`, url, health.Status, health.Database, health.Cache)
}

// formatHealthJSON formats the health triad as JSON
func formatHealthJSON(url string, health *client.HealthStatus) string {
	output := map[string]string{
		"backend":  url,
		"status":   health.Status,
		"database": health.Database,
		"cache":    health.Cache,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
