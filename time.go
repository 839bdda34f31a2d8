package client

import "context"

// ServerTime returns the server time in epoch milliseconds UTC, with
// timezone information.
func (c *Client) ServerTime(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/time-extended")
}

// ServerTimestamp returns the server time as a bare epoch-millisecond value.
func (c *Client) ServerTimestamp(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/time")
}
