// ABOUTME: Tests for the root command and global flag handling
// ABOUTME: Verifies flag precedence and error-to-exit-code mapping

package cmd

import (
	"errors"
	"testing"

	"github.com/codementor/cli/internal/client"
)

func TestGetAPIURL_FlagOverrides(t *testing.T) {
	apiURL = "http://flag-override.example.com"
	defer func() { apiURL = "" }()

	if url := GetAPIURL(); url != "http://flag-override.example.com" {
		t.Errorf("expected flag to win, got %s", url)
	}
}

func TestGetConfigDir_FlagOverrides(t *testing.T) {
	configDir = "/tmp/custom"
	defer func() { configDir = "" }()

	if dir := GetConfigDir(); dir != "/tmp/custom" {
		t.Errorf("expected flag to win, got %s", dir)
	}
}

func TestJSONOutput(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	if !IsJSONOutput() {
		t.Error("expected IsJSONOutput to return true")
	}
}

func TestExitCodeForError(t *testing.T) {
	rejected := &client.APIError{Message: "Invalid credentials", StatusCode: 401}
	if got := exitCodeForError(rejected); got != 1 {
		t.Errorf("expected 1 for server rejection, got %d", got)
	}

	transport := &client.APIError{Message: "cannot connect"}
	if got := exitCodeForError(transport); got != 2 {
		t.Errorf("expected 2 for transport error, got %d", got)
	}

	if got := exitCodeForError(errors.New("boom")); got != 2 {
		t.Errorf("expected 2 for unknown error, got %d", got)
	}
}
