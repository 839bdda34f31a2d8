package client

import "context"

// LicenseSession returns the current license session.
func (c *Client) LicenseSession(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/license-session")
}

// CreateLicenseSession uploads a new license and activates it.
func (c *Client) CreateLicenseSession(ctx context.Context, license string) (*Response, error) {
	body := struct {
		License string `json:"license"`
	}{License: license}
	return c.post(ctx, "/license-session", body)
}

// DeleteLicenseSession removes the current license session.
func (c *Client) DeleteLicenseSession(ctx context.Context) (*Response, error) {
	return c.delete(ctx, "/license-session")
}
