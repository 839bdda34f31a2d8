package client

import (
	"context"
	"net/url"
)

// LogQuery selects the server log range and format. An empty Format means
// "gzip"; nil From and To default to the earliest and latest log file.
type LogQuery struct {
	// Format is "gzip" or "text".
	Format string
	// From is the range start, server epoch milliseconds UTC.
	From *int64
	// To is the range end, server epoch milliseconds UTC.
	To *int64
}

// ServerLogs downloads server logs. With the gzip format the typed body is
// raw bytes; with the text format it is a string.
func (c *Client) ServerLogs(ctx context.Context, q LogQuery) (*Response, error) {
	if q.Format == "" {
		q.Format = "gzip"
	}
	v := url.Values{}
	v.Set("format", q.Format)
	setOptionalInt64(v, "from", q.From)
	setOptionalInt64(v, "to", q.To)
	return c.get(ctx, "/log?"+v.Encode())
}
