package client

import "context"

// Endpoints lists every endpoint the server's API exposes.
func (c *Client) Endpoints(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/endpoints")
}

// Version returns version information for the server install.
func (c *Client) Version(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/version")
}

// UploadUIPackage uploads a signed user-interface update package. pkg is the
// ZIP archive bytes, transmitted unchanged.
func (c *Client) UploadUIPackage(ctx context.Context, pkg []byte) (*Response, error) {
	return c.post(ctx, "/ui", pkg)
}
