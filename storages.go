package client

import (
	"context"
	"fmt"
)

// Storages lists all archive storage locations.
func (c *Client) Storages(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/storages")
}

// Storage retrieves an archive storage location by ID.
func (c *Client) Storage(ctx context.Context, storageID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/storages/%d", storageID))
}
