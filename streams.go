package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// FrameOptions selects the frame returned by [Client.StreamFrame]. Zero
// values are server sentinels and are always transmitted: time 0 is the
// first frame of the latest archive, width and height 0 keep the stream's
// native resolution.
type FrameOptions struct {
	// Time is the frame time, server epoch milliseconds UTC.
	Time int64
	// Width and Height request a scaled frame.
	Width  int64
	Height int64
	// Fallback returns a black GIF instead of an error status on failure.
	Fallback bool
}

// CameraStreams lists the streams of a camera.
func (c *Client) CameraStreams(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/streams", cameraID))
}

// RegisterStream adds a stream to a camera. body mirrors the server's
// stream resource schema.
func (c *Client) RegisterStream(ctx context.Context, cameraID int, body any) (*Response, error) {
	return c.post(ctx, fmt.Sprintf("/cameras/%d/streams", cameraID), body)
}

// CameraStream retrieves one stream of a camera.
func (c *Client) CameraStream(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/streams/%d", cameraID, streamID))
}

// PatchStream partially updates a camera's stream.
func (c *Client) PatchStream(ctx context.Context, cameraID, streamID int, body any) (*Response, error) {
	return c.patch(ctx, fmt.Sprintf("/cameras/%d/streams/%d", cameraID, streamID), body)
}

// UpdateStream fully replaces a camera's stream resource.
func (c *Client) UpdateStream(ctx context.Context, cameraID, streamID int, body any) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/cameras/%d/streams/%d", cameraID, streamID), body)
}

// DeleteStream removes a camera's stream.
func (c *Client) DeleteStream(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/cameras/%d/streams/%d", cameraID, streamID))
}

// RestartStream restarts a camera's stream.
func (c *Client) RestartStream(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.patch(ctx, fmt.Sprintf("/cameras/%d/streams/%d/restart", cameraID, streamID), nil)
}

// MotionMask retrieves a stream's motion mask image.
func (c *Client) MotionMask(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/streams/%d/motion/mask", cameraID, streamID))
}

// UploadMotionMask uploads a motion mask for a stream. mask is a PNG image
// of a stream frame, transmitted unchanged.
func (c *Client) UploadMotionMask(ctx context.Context, cameraID, streamID int, mask []byte) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/cameras/%d/streams/%d/motion/mask", cameraID, streamID), mask)
}

// DeleteMotionMask removes a stream's motion mask.
func (c *Client) DeleteMotionMask(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/cameras/%d/streams/%d/motion/mask", cameraID, streamID))
}

// StreamMetadata returns a camera stream's metadata.
func (c *Client) StreamMetadata(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/streams/%d/metadata", cameraID, streamID))
}

// Streams lists all registered streams.
func (c *Client) Streams(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/streams")
}

// StreamStatuses lists the status of every registered stream.
func (c *Client) StreamStatuses(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/streams/status")
}

// Stream retrieves a stream by ID.
func (c *Client) Stream(ctx context.Context, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/streams/%d", streamID))
}

// StreamStatus returns the status of one stream.
func (c *Client) StreamStatus(ctx context.Context, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/streams/%d/status", streamID))
}

// StreamFrame fetches a single JPEG frame from a stream.
func (c *Client) StreamFrame(ctx context.Context, streamID int, opts FrameOptions) (*Response, error) {
	v := url.Values{}
	setInt64(v, "time", opts.Time)
	setInt64(v, "width", opts.Width)
	setInt64(v, "height", opts.Height)
	v.Set("fallback", strconv.FormatBool(opts.Fallback))
	return c.get(ctx, fmt.Sprintf("/streams/%d/frame?%s", streamID, v.Encode()))
}

// ExportStream exports recorded media between start and stop (server epoch
// milliseconds UTC). container is one of mkv, mov, mp4, dewarp, or
// dewarp-parent; empty selects mkv.
func (c *Client) ExportStream(ctx context.Context, streamID int, start, stop int64, container string) (*Response, error) {
	if container == "" {
		container = "mkv"
	}
	v := url.Values{}
	setInt64(v, "start", start)
	setInt64(v, "stop", stop)
	v.Set("format", container)
	return c.get(ctx, fmt.Sprintf("/streams/%d/export?%s", streamID, v.Encode()))
}
