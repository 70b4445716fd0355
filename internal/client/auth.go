// ABOUTME: Auth resource calls for the codementor API
// ABOUTME: Login/register persist the token pair; logout removes it

package client

import "context"

// Login exchanges credentials for a token pair and persists it
func (c *Client) Login(ctx context.Context, creds LoginRequest) (*AuthTokens, error) {
	var tokens AuthTokens
	if err := c.post(ctx, "/auth/login/", creds, &tokens); err != nil {
		return nil, err
	}
	if c.tokens != nil {
		if err := c.tokens.Save(tokens.Access, tokens.Refresh); err != nil {
			return nil, err
		}
	}
	return &tokens, nil
}

// Register creates an account, returning the user and persisting its tokens
func (c *Client) Register(ctx context.Context, data RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.post(ctx, "/auth/register/", data, &resp); err != nil {
		return nil, err
	}
	if c.tokens != nil {
		if err := c.tokens.Save(resp.Tokens.Access, resp.Tokens.Refresh); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Logout removes the persisted token pair. Local only; no backend call.
func (c *Client) Logout() error {
	if c.tokens == nil {
		return nil
	}
	return c.tokens.Clear()
}

// Profile fetches the current user
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/profile/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial update to the current user
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	var user User
	if err := c.patch(ctx, "/auth/profile/update/", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// IsAuthenticated reports whether an access token is currently persisted.
// This is a local presence check, not a validated claim of a live session.
func (c *Client) IsAuthenticated() bool {
	return c.tokens != nil && c.tokens.AccessToken() != ""
}
