// ABOUTME: Health resource call for the codementor API
// ABOUTME: Reports the backend's service/database/cache status triad

package client

import "context"

// Health calls GET /health/ and returns the status triad
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.get(ctx, "/health/", &status); err != nil {
		return nil, err
	}
	return &status, nil
}
