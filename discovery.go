package client

import (
	"context"
	"fmt"
)

// DiscoveredCameras lists the cameras found via ONVIF autodiscovery.
func (c *Client) DiscoveredCameras(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/discoverable/cameras")
}

// DiscoveredServers lists the VMS servers discovered on the network.
func (c *Client) DiscoveredServers(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/discoverable/servers")
}

// DiscoveredServer retrieves a discovered server by ID. A standalone
// install is server 1.
func (c *Client) DiscoveredServer(ctx context.Context, serverID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/discoverable/servers/%d", serverID))
}
