// ABOUTME: Status command for the codementor CLI
// ABOUTME: Aggregates backend health, auth state, and catalog size

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
	"golang.org/x/sync/errgroup"

	"github.com/codementor/cli/internal/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show platform status",
	Long: `Display backend health, whether a token is stored locally, and how
many problems are available. Suitable for CI smoke checks.

Exit codes:
  0 - Backend reachable
  2 - Error (connectivity)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStatus(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// platformStatus is the aggregated status report
type platformStatus struct {
	Backend       string `json:"backend"`
	Status        string `json:"status"`
	Database      string `json:"database"`
	Cache         string `json:"cache"`
	Authenticated bool   `json:"authenticated"`
	ProblemCount  int    `json:"problem_count"`
}

// runStatus gathers the status report and returns exit code
func runStatus(ctx context.Context, w io.Writer) int {
	c := newAPIClient()

	var (
		health   *client.HealthStatus
		problems []client.Problem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := c.Health(gctx)
		if err != nil {
			return err
		}
		health = h
		return nil
	})
	g.Go(func() error {
		ps, err := c.ListProblems(gctx, client.ProblemFilters{})
		if err != nil {
			return err
		}
		problems = ps
		return nil
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	report := platformStatus{
		Backend:       GetAPIURL(),
		Status:        health.Status,
		Database:      health.Database,
		Cache:         health.Cache,
		Authenticated: c.IsAuthenticated(),
		ProblemCount:  len(problems),
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatStatusHuman(report))
	}
	return 0
}

// formatStatusHuman formats the status report for human readability
func formatStatusHuman(s platformStatus) string {
	auth := "no"
	if s.Authenticated {
		auth = "yes"
	}
	return fmt.Sprintf(`Backend:       %s
Status:        %s
Database:      %s
Cache:         %s
Authenticated: %s
Problems:      %d`, s.Backend, s.Status, s.Database, s.Cache, auth, s.ProblemCount)
}
