package client

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// BodyClass tags the decoded representation of a response body.
type BodyClass int

const (
	// BodyJSON is a response declaring application/json, decoded into a
	// JSON value (map, slice, string, number, bool, or nil).
	BodyJSON BodyClass = iota
	// BodyText is a response with any text-based subtype, decoded into a
	// string.
	BodyText
	// BodyBytes is any other response, left as raw bytes.
	BodyBytes
)

// Body is the typed response payload, decoded once by the dispatcher from
// the Content-Type header. Exactly one of JSON, Text, or Bytes is populated,
// per Class.
type Body struct {
	Class BodyClass
	JSON  any
	Text  string
	Bytes []byte
}

// Map returns the body as a JSON object, if that is what was decoded.
func (b Body) Map() (map[string]any, bool) {
	m, ok := b.JSON.(map[string]any)
	return m, ok && b.Class == BodyJSON
}

// List returns the body as a JSON array, if that is what was decoded.
func (b Body) List() ([]any, bool) {
	l, ok := b.JSON.([]any)
	return l, ok && b.Class == BodyJSON
}

// Response is the envelope returned for every call: the HTTP status,
// response headers, the raw transport body, and the typed Body. Error
// statuses (4xx/5xx) are returned here rather than as Go errors; only the
// caller decides whether a status is a failure.
type Response struct {
	StatusCode int
	Headers    http.Header
	Raw        []byte
	Body       Body
}

// IsError reports whether the server answered with a 4xx or 5xx status.
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// decodeResponse classifies the body by the declared content type:
// application/json decodes as JSON, any text subtype becomes a string, and
// everything else stays raw.
func decodeResponse(resp *resty.Response) (*Response, error) {
	raw := resp.Body()

	r := &Response{
		StatusCode: resp.StatusCode(),
		Headers:    resp.Header(),
		Raw:        raw,
	}

	contentType := resp.Header().Get("Content-Type")
	switch {
	case strings.Contains(contentType, "application/json"):
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		r.Body = Body{Class: BodyJSON, JSON: v}
	case strings.Contains(contentType, "text"):
		r.Body = Body{Class: BodyText, Text: string(raw)}
	default:
		r.Body = Body{Class: BodyBytes, Bytes: raw}
	}

	return r, nil
}
