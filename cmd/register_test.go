// ABOUTME: Tests for the register command
// ABOUTME: Verifies account creation and confirmation forwarding

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/credstore"
)

func resetRegisterFlags() {
	registerUsername, registerEmail = "", ""
	registerPassword, registerPasswordConfirm = "", ""
}

func TestRegisterCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var data client.RegisterRequest
		json.NewDecoder(r.Body).Decode(&data)
		// Mismatched confirmation is the server's problem, not the client's
		if data.PasswordConfirm != "other" {
			t.Errorf("expected confirmation forwarded verbatim, got %q", data.PasswordConfirm)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client.RegisterResponse{
			User:   client.User{ID: 2, Username: "bob", Email: "b@x.com"},
			Tokens: client.AuthTokens{Access: "acc", Refresh: "ref"},
		})
	}))
	defer server.Close()

	apiURL = server.URL
	configDir = t.TempDir()
	registerUsername = "bob"
	registerEmail = "b@x.com"
	registerPassword = "pw"
	registerPasswordConfirm = "other"
	defer func() { apiURL, configDir = "", ""; resetRegisterFlags() }()

	var buf bytes.Buffer
	exitCode := runRegister(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (output %q)", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "Registered and logged in as bob") {
		t.Errorf("expected success message, got %q", buf.String())
	}
	if !credstore.New(configDir).HasAccessToken() {
		t.Error("expected token persisted")
	}
}

func TestRegisterCommand_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Passwords do not match"})
	}))
	defer server.Close()

	apiURL = server.URL
	configDir = t.TempDir()
	registerUsername = "bob"
	registerEmail = "b@x.com"
	registerPassword = "pw"
	registerPasswordConfirm = "other"
	defer func() { apiURL, configDir = "", ""; resetRegisterFlags() }()

	var buf bytes.Buffer
	exitCode := runRegister(context.Background(), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Passwords do not match") {
		t.Errorf("expected server message, got %q", buf.String())
	}
}
