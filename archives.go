package client

import (
	"context"
	"fmt"
	"net/url"
)

// ArchiveQuery pages through the archive list. Start 0 means the current
// server time; Take 0 means 100. StreamID, when set, restricts the listing
// to one stream's archives.
type ArchiveQuery struct {
	// Start is the listing start, server epoch milliseconds UTC.
	Start int64
	// Take is the number of archives to return.
	Take int
	// Offset is the number of archives to skip.
	Offset int
	// StreamID filters by stream; nil lists archives of all streams.
	StreamID *int
}

// Archives lists existing archives.
func (c *Client) Archives(ctx context.Context, q ArchiveQuery) (*Response, error) {
	if q.Take == 0 {
		q.Take = 100
	}
	v := url.Values{}
	setInt64(v, "start", q.Start)
	setInt(v, "take", q.Take)
	setInt(v, "offset", q.Offset)
	setOptionalInt(v, "streamId", q.StreamID)
	return c.get(ctx, "/archives?"+v.Encode())
}

// Archive retrieves an archive by ID.
func (c *Client) Archive(ctx context.Context, archiveID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/archives/%d", archiveID))
}

// DownloadArchive downloads an archive's media; the response body is the
// raw container bytes.
func (c *Client) DownloadArchive(ctx context.Context, archiveID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/archives/%d/download", archiveID))
}

// ArchivesPerDay returns the per-day count of generated archives.
func (c *Client) ArchivesPerDay(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/archives/per-day")
}
