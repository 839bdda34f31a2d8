package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type lbmResolution struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

type lbmStreamRequest struct {
	StreamID      int           `json:"streamId"`
	Resolution    lbmResolution `json:"resolution"`
	StartTime     int64         `json:"startTime"`
	Sync          bool          `json:"sync"`
	Rate          float64       `json:"rate"`
	WaitThreshold int           `json:"waitThres"`
	Transport     string        `json:"transport"`
}

// LBMStreamConfig describes a low-bandwidth mode stream to create. Start 0
// requests live video; Rate 0 means 1.0, WaitThreshold 0 means 2000ms, and
// an empty Transport means "websocket-base64".
type LBMStreamConfig struct {
	// StreamID is the source stream.
	StreamID int
	// Height and Width are the transcoded resolution.
	Height int
	Width  int
	// Start is the playback start, server epoch milliseconds UTC; 0 is live.
	Start int64
	// Sync offsets playback video to account for request latency.
	Sync bool
	// Rate is the playback rate.
	Rate float64
	// WaitThreshold is the longest wait in milliseconds for media to start
	// or to bridge a gap.
	WaitThreshold int
	// Transport is "http" or "websocket-base64".
	Transport string
}

// LBMStreams lists the currently active low-bandwidth streams.
func (c *Client) LBMStreams(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/low-bandwidth/streams")
}

// CreateLBMStream starts a low-bandwidth mode session for a stream. The
// response body carries the session's UUID.
func (c *Client) CreateLBMStream(ctx context.Context, cfg LBMStreamConfig) (*Response, error) {
	if cfg.Rate == 0 {
		cfg.Rate = 1.0
	}
	if cfg.WaitThreshold == 0 {
		cfg.WaitThreshold = 2000
	}
	if cfg.Transport == "" {
		cfg.Transport = "websocket-base64"
	}
	body := lbmStreamRequest{
		StreamID: cfg.StreamID,
		Resolution: lbmResolution{
			Height: cfg.Height,
			Width:  cfg.Width,
		},
		StartTime:     cfg.Start,
		Sync:          cfg.Sync,
		Rate:          cfg.Rate,
		WaitThreshold: cfg.WaitThreshold,
		Transport:     cfg.Transport,
	}
	return c.post(ctx, "/low-bandwidth/streams", body)
}

// LBMStream retrieves a low-bandwidth stream session by UUID.
func (c *Client) LBMStream(ctx context.Context, streamID uuid.UUID) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/low-bandwidth/streams/%s", streamID))
}

// DeleteLBMStream tears down a low-bandwidth stream session.
func (c *Client) DeleteLBMStream(ctx context.Context, streamID uuid.UUID) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/low-bandwidth/streams/%s", streamID))
}

// LBMFrame fetches the next JPEG frame of a session created with the "http"
// transport.
func (c *Client) LBMFrame(ctx context.Context, streamID uuid.UUID) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/low-bandwidth/streams/%s/frame", streamID))
}
