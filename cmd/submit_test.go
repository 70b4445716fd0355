// ABOUTME: Tests for the submit command
// ABOUTME: Verifies code loading, server judgment output, and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codementor/cli/internal/client"
)

func writeSolutionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solution.py")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSubmitCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req client.SubmissionRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.ProblemID != 5 || req.Code != "print('hi')\n" {
			t.Errorf("unexpected request: %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client.Submission{
			ID: 42, ProblemID: 5, ProblemTitle: "Two Sum",
			Status: client.StatusPending, Language: "python",
		})
	}))
	defer server.Close()

	apiURL = server.URL
	configDir = t.TempDir()
	submitProblemID = 5
	submitLanguage = "python"
	submitFile = writeSolutionFile(t, "print('hi')\n")
	defer func() {
		apiURL, configDir, submitLanguage, submitFile = "", "", "", ""
		submitProblemID = 0
	}()

	var buf bytes.Buffer
	exitCode := runSubmit(context.Background(), strings.NewReader(""), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (output %q)", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "Submission #42") {
		t.Errorf("expected submission id in output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "pending") {
		t.Errorf("expected status in output, got %q", buf.String())
	}
}

func TestSubmitCommand_CodeFromStdin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req client.SubmissionRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Code != "stdin code" {
			t.Errorf("expected stdin code, got %q", req.Code)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client.Submission{ID: 1, Status: client.StatusPending})
	}))
	defer server.Close()

	apiURL = server.URL
	configDir = t.TempDir()
	submitProblemID = 5
	submitLanguage = "python"
	submitFile = "-"
	defer func() {
		apiURL, configDir, submitLanguage, submitFile = "", "", "", ""
		submitProblemID = 0
	}()

	var buf bytes.Buffer
	exitCode := runSubmit(context.Background(), strings.NewReader("stdin code"), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
}

func TestSubmitCommand_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Time limit exceeded"})
	}))
	defer server.Close()

	apiURL = server.URL
	configDir = t.TempDir()
	submitProblemID = 5
	submitLanguage = "python"
	submitFile = writeSolutionFile(t, "while True: pass")
	defer func() {
		apiURL, configDir, submitLanguage, submitFile = "", "", "", ""
		submitProblemID = 0
	}()

	var buf bytes.Buffer
	exitCode := runSubmit(context.Background(), strings.NewReader(""), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Time limit exceeded") {
		t.Errorf("expected judge message, got %q", buf.String())
	}
}

func TestSubmitCommand_MissingFlags(t *testing.T) {
	var buf bytes.Buffer
	exitCode := runSubmit(context.Background(), strings.NewReader(""), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "--problem and --file are required") {
		t.Errorf("expected usage error, got %q", buf.String())
	}
}

func TestPromptLanguage_SkippedWhenFlagSet(t *testing.T) {
	submitLanguage = "go"
	defer func() { submitLanguage = "" }()

	// Must not open an interactive form when the flag already has a value
	if err := promptLanguage(); err != nil {
		t.Errorf("expected no prompt, got %v", err)
	}
	if submitLanguage != "go" {
		t.Errorf("expected language unchanged, got %q", submitLanguage)
	}
}
