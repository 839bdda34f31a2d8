package client

import (
	"context"
	"net/url"
)

// EventQuery filters server and stream event listings. Start is required;
// nil Stop defaults to the latest event available and nil Count returns all
// matching events. IDs and Types are comma-joined and omitted when empty.
type EventQuery struct {
	// Start is the range start, server epoch milliseconds UTC.
	Start int64
	// Stop is the range end; nil means the latest event.
	Stop *int64
	// Count caps the number of returned events; nil returns all.
	Count *int
	// IDs restricts to specific server or stream IDs.
	IDs []int
	// Types restricts to specific event types.
	Types []string
}

func (q EventQuery) encode() string {
	v := url.Values{}
	setInt64(v, "start", q.Start)
	setOptionalInt64(v, "stop", q.Stop)
	setOptionalInt(v, "count", q.Count)
	setIntList(v, "id", q.IDs)
	setStringList(v, "eventType", q.Types)
	return v.Encode()
}

// HistogramQuery bins stream events into segments of MinSegment
// milliseconds between Start and Stop.
type HistogramQuery struct {
	Start      int64
	Stop       int64
	MinSegment int64
	// IDs restricts to specific stream IDs.
	IDs []int
	// Types restricts to specific event types.
	Types []string
}

func (q HistogramQuery) encode() string {
	v := url.Values{}
	setInt64(v, "start", q.Start)
	setInt64(v, "stop", q.Stop)
	setInt64(v, "minSegment", q.MinSegment)
	setIntList(v, "id", q.IDs)
	setStringList(v, "type", q.Types)
	return v.Encode()
}

// ServerEvents lists server events matching the query.
func (c *Client) ServerEvents(ctx context.Context, q EventQuery) (*Response, error) {
	return c.get(ctx, "/events/server?"+q.encode())
}

// StreamEvents lists camera stream events matching the query.
func (c *Client) StreamEvents(ctx context.Context, q EventQuery) (*Response, error) {
	return c.get(ctx, "/events/camera-stream?"+q.encode())
}

// StreamEventHistogram returns binned camera stream event counts.
func (c *Client) StreamEventHistogram(ctx context.Context, q HistogramQuery) (*Response, error) {
	return c.get(ctx, "/events/camera-stream/histogram?"+q.encode())
}
