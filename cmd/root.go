// ABOUTME: Root command for the codementor CLI
// ABOUTME: Handles global flags and configuration resolution

package cmd

import (
	"errors"
	"sync"

	"github.com/spf13/cobra"

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/config"
	"github.com/codementor/cli/internal/credstore"
)

var (
	apiURL     string
	configDir  string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8000/api"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "codementor",
	Short: "CLI for the codementor coding-education platform",
	Long: `codementor is a command-line client for the codementor platform.

It authenticates users, browses coding problems, submits solutions, and
checks backend health. Run "codementor dashboard" for the interactive TUI.

Environment Variables:
  CODEMENTOR_API_URL  Backend API URL (default: http://localhost:8000/api)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides CODEMENTOR_API_URL)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory for tokens and config (default: XDG config dir)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

var (
	loadOnce sync.Once
	cfg      config.Config
)

// loadedConfig resolves configuration once per process
func loadedConfig() config.Config {
	loadOnce.Do(func() {
		c, err := config.Load()
		if err != nil {
			c.API.URL = defaultAPIURL
			c.ConfigDir = credstore.DefaultConfigDir()
		}
		cfg = c
	})
	return cfg
}

// GetAPIURL returns the API URL from flag, env, config file, or default
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	return loadedConfig().API.URL
}

// GetConfigDir returns the config directory from flag or config
func GetConfigDir() string {
	if configDir != "" {
		return configDir
	}
	return loadedConfig().ConfigDir
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newAPIClient builds a client backed by the persisted token store
func newAPIClient() *client.Client {
	return client.New(GetAPIURL(), credstore.New(GetConfigDir()))
}

// exitCodeForError maps a failure to the CLI exit code contract:
// 1 when the server rejected the action, 2 for transport/usage errors
func exitCodeForError(err error) int {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode > 0 {
		return 1
	}
	return 2
}
