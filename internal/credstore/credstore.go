// ABOUTME: Persists the access/refresh token pair in the XDG config directory
// ABOUTME: Token file presence is the boot-time signal for "was authenticated"

package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const tokenFile = "tokens.json"

// Store reads and writes the persisted token pair
type Store struct {
	configDir string
}

type tokenData struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// New creates a Store backed by the given config directory
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "codementor")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "codementor")
}

func (s *Store) tokenPath() string {
	return filepath.Join(s.configDir, tokenFile)
}

// load reads the token pair from disk; missing or corrupt files read as empty
func (s *Store) load() tokenData {
	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return tokenData{}
	}
	var tokens tokenData
	if err := json.Unmarshal(data, &tokens); err != nil {
		return tokenData{}
	}
	return tokens
}

// Save persists both tokens, creating the config directory if needed
func (s *Store) Save(access, refresh string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	data, err := json.Marshal(tokenData{Access: access, Refresh: refresh})
	if err != nil {
		return err
	}
	return os.WriteFile(s.tokenPath(), data, 0600)
}

// Clear removes the persisted token pair. Clearing an absent pair is not
// an error.
func (s *Store) Clear() error {
	err := os.Remove(s.tokenPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// AccessToken returns the persisted access token, or empty when absent
func (s *Store) AccessToken() string {
	return s.load().Access
}

// RefreshToken returns the persisted refresh token, or empty when absent
func (s *Store) RefreshToken() string {
	return s.load().Refresh
}

// HasAccessToken reports whether an access token is persisted
func (s *Store) HasAccessToken() bool {
	return s.AccessToken() != ""
}
