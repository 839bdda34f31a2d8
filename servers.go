package client

import (
	"context"
	"fmt"
	"net/url"
)

// Servers lists all servers.
func (c *Client) Servers(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/servers")
}

// Server retrieves a server by ID. A standalone install is server 1.
func (c *Client) Server(ctx context.Context, serverID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/servers/%d", serverID))
}

// ServerReport generates a server activity report between start and stop
// (server epoch milliseconds UTC).
func (c *Client) ServerReport(ctx context.Context, start, stop int64) (*Response, error) {
	v := url.Values{}
	setInt64(v, "start", start)
	setInt64(v, "stop", stop)
	return c.get(ctx, "/server/report?"+v.Encode())
}

// DiskUtilization returns the server's disk utilization.
func (c *Client) DiskUtilization(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/server/utilization/disk")
}

// DatabaseFaults lists database errors from start (server epoch
// milliseconds UTC); a nil stop extends the range to now.
func (c *Client) DatabaseFaults(ctx context.Context, start int64, stop *int64) (*Response, error) {
	v := url.Values{}
	setInt64(v, "start", start)
	setOptionalInt64(v, "stop", stop)
	return c.get(ctx, "/server/database-faults?"+v.Encode())
}

// ServerPropertiesInfo describes the configurable server properties.
func (c *Client) ServerPropertiesInfo(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/server/properties/info")
}

// ServerProperties returns the properties the server currently runs with.
func (c *Client) ServerProperties(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/server/properties")
}

// UpdateServerProperties rewrites the server properties file. body mirrors
// the server's properties resource schema.
func (c *Client) UpdateServerProperties(ctx context.Context, body any) (*Response, error) {
	return c.put(ctx, "/server/properties", body)
}

// PropertiesConfirmation reports whether a properties change is waiting for
// confirmation.
func (c *Client) PropertiesConfirmation(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/server/properties/confirmed")
}

// ConfirmProperties confirms or rejects a pending properties change; on
// rejection the server reverts to the previous configuration.
func (c *Client) ConfirmProperties(ctx context.Context, confirmed bool) (*Response, error) {
	body := struct {
		PropertiesConfirmed bool `json:"propertiesConfirmed"`
	}{PropertiesConfirmed: confirmed}
	return c.post(ctx, "/server/properties/confirmed", body)
}
