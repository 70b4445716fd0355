// ABOUTME: Shared helpers for the session and catalog stores
// ABOUTME: Maps client failures to the uniform error string the UI renders

package store

import (
	"errors"

	"github.com/codementor/cli/internal/client"
)

// errorMessage extracts the API error message, falling back to the given
// per-action string when the failure carries none
func errorMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
