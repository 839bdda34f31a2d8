package client

import (
	"context"
	"fmt"
)

type cameraConnection struct {
	URI      string `json:"uri"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type cameraRegistration struct {
	Driver     string           `json:"driver"`
	Name       string           `json:"name"`
	Connection cameraConnection `json:"connection"`
}

// Cameras lists all registered cameras.
func (c *Client) Cameras(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/cameras")
}

// RegisterONVIFCamera registers an ONVIF-compatible camera by IP address.
// name defaults to the address when empty; https selects the scheme used to
// reach the camera's device service.
func (c *Client) RegisterONVIFCamera(ctx context.Context, address, username, password, name string, https bool) (*Response, error) {
	if name == "" {
		name = address
	}
	scheme := "http"
	if https {
		scheme = "https"
	}
	body := cameraRegistration{
		Driver: "ONVIF",
		Name:   name,
		Connection: cameraConnection{
			URI:      fmt.Sprintf("%s://%s/onvif/device_service", scheme, address),
			Username: username,
			Password: password,
		},
	}
	return c.post(ctx, "/cameras", body)
}

// RegisterRTSPCamera registers a generic RTSP camera by stream URI. name
// defaults to the URI when empty.
func (c *Client) RegisterRTSPCamera(ctx context.Context, uri, username, password, name string) (*Response, error) {
	if name == "" {
		name = uri
	}
	body := cameraRegistration{
		Driver: "Generic RTSP",
		Name:   name,
		Connection: cameraConnection{
			URI:      uri,
			Username: username,
			Password: password,
		},
	}
	return c.post(ctx, "/cameras", body)
}

// Camera retrieves a camera by ID.
func (c *Client) Camera(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d", cameraID))
}

// PatchCamera partially updates a camera. body mirrors the server's camera
// resource schema.
func (c *Client) PatchCamera(ctx context.Context, cameraID int, body any) (*Response, error) {
	return c.patch(ctx, fmt.Sprintf("/cameras/%d", cameraID), body)
}

// DeleteCamera removes a camera and its streams.
func (c *Client) DeleteCamera(ctx context.Context, cameraID int) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/cameras/%d", cameraID))
}

// VerifyCamera checks that a camera is reachable.
func (c *Client) VerifyCamera(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/verify", cameraID))
}

// CamerasDiskUsage returns the archive disk usage of every camera.
func (c *Client) CamerasDiskUsage(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/cameras/disk-usage")
}

// TimezoneList returns the server's IANA to POSIX timezone mappings.
func (c *Client) TimezoneList(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/cameras/tz-list")
}

// PTZPosition returns a camera's current pan/tilt/zoom position.
func (c *Client) PTZPosition(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/position", cameraID))
}

// SetPTZPosition moves a camera. body mirrors the server's PTZ resource
// schema.
func (c *Client) SetPTZPosition(ctx context.Context, cameraID int, body any) (*Response, error) {
	return c.post(ctx, fmt.Sprintf("/cameras/%d/position", cameraID), body)
}

// PTZPresets lists a camera's stored PTZ presets.
func (c *Client) PTZPresets(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/position/presets", cameraID))
}

// CreatePTZPreset stores the camera's current position as a named preset.
func (c *Client) CreatePTZPreset(ctx context.Context, cameraID int, name string) (*Response, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}
	return c.post(ctx, fmt.Sprintf("/cameras/%d/position/presets", cameraID), body)
}

// DeletePTZPreset removes a PTZ preset by its token.
func (c *Client) DeletePTZPreset(ctx context.Context, cameraID int, presetToken string) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/cameras/%d/position/presets/%s", cameraID, presetToken))
}
