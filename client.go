package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client is a handle on one Kestrel VMS server. It owns the base address,
// the underlying transport session, the active credential, and the timeout
// configuration. Create one per logical server connection and release it
// with [Close].
//
// The credential can be replaced after construction with [SetBearerToken];
// the swap is not synchronized with in-flight requests.
type Client struct {
	baseURL string
	rest    *resty.Client
	options *Options
	cred    Credential
}

// New creates a client for the server at address. The address carries the
// scheme, host, and port; the fixed /service prefix and endpoint paths are
// appended per call.
func New(address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errors.New("server address must be set")
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(address, "/")).
		SetTimeout(options.readTimeout).
		SetTransport(&http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: options.connectTimeout,
			}).DialContext,
			TLSHandshakeTimeout: options.connectTimeout,
		}).
		SetDisableWarn(true)

	if len(options.requestHeaders) > 0 {
		rest.SetHeaders(options.requestHeaders)
	}

	return &Client{
		baseURL: strings.TrimRight(address, "/"),
		rest:    rest,
		options: options,
		cred:    resolveCredential(options),
	}, nil
}

// Close releases the connections held by the underlying transport.
func (c *Client) Close() {
	c.rest.GetClient().CloseIdleConnections()
}

// Do performs one request against the service API and returns the typed
// response envelope. path is relative to the /service prefix; a leading
// slash is optional. body may be nil, a []byte or string passed through
// unchanged, or any other value serialized to JSON.
//
// Do makes exactly one round trip. HTTP error statuses are returned as
// ordinary envelopes with a nil error; a non-nil error is always a [*Error]
// carrying the transport or decode failure.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	op := method + " /" + strings.TrimLeft(path, "/")

	req := c.rest.R().SetContext(ctx)
	c.cred.apply(req)

	switch b := body.(type) {
	case nil:
	case []byte:
		req.SetBody(b)
	case string:
		req.SetBody(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, &Error{Kind: KindDecode, Op: op, Err: fmt.Errorf("encode request body: %w", err)}
		}
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(data)
	}

	c.options.requestLogger.Debugf("%s", op)

	resp, err := req.Execute(method, servicePath(path))
	if err != nil {
		cerr := classifyTransportError(op, err)
		c.options.requestLogger.Errorf("%v", cerr)
		return nil, cerr
	}

	envelope, err := decodeResponse(resp)
	if err != nil {
		cerr := &Error{Kind: KindDecode, Op: op, Err: err}
		c.options.requestLogger.Errorf("%v", cerr)
		return nil, cerr
	}

	if envelope.IsError() {
		c.options.requestLogger.Warnf("%s: status %d", op, envelope.StatusCode)
	}

	return envelope, nil
}

func servicePath(path string) string {
	return "/service/" + strings.TrimLeft(path, "/")
}

func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

func (c *Client) patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

func (c *Client) delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}
