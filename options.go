package client

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	connectTimeout    time.Duration
	readTimeout       time.Duration
	requestLogger     RequestLogger
	requestHeaders    map[string]string
	basicAuthUsername string
	basicAuthPassword string
	credential        Credential
}

func newClientOptions() *Options {
	return &Options{
		connectTimeout: 30 * time.Second,
		readTimeout:    30 * time.Second,
		requestLogger:  &NoopLogger{},
		requestHeaders: map[string]string{},
	}
}

// WithTimeout sets both the connect and read timeouts to the same value.
// Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.connectTimeout = timeout
			o.readTimeout = timeout
		}
	}
}

// WithConnectTimeout sets the timeout for establishing the TCP connection
// and TLS handshake. Non-positive values are ignored.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.connectTimeout = timeout
		}
	}
}

// WithReadTimeout sets the timeout for the full request round trip,
// including reading the response body. Non-positive values are ignored.
func WithReadTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.readTimeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a default header to every request. The
// Authorization header is managed by the active credential and cannot be
// overridden here.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithBasicAuth configures HTTP Basic authentication. When both a username
// and password are supplied, they take precedence over any credential given
// via [WithCredential].
func WithBasicAuth(username, password string) Option {
	return func(o *Options) {
		o.basicAuthUsername = username
		o.basicAuthPassword = password
	}
}

// WithCredential supplies an explicit credential, built with [Basic] or
// [Bearer].
func WithCredential(cred Credential) Option {
	return func(o *Options) {
		o.credential = cred
	}
}

func (o *Options) Validate() error {
	if o.connectTimeout <= 0 {
		return errors.New("connectTimeout must be positive")
	}

	if o.connectTimeout > time.Hour {
		return fmt.Errorf("connectTimeout must not exceed %s", time.Hour)
	}

	if o.readTimeout <= 0 {
		return errors.New("readTimeout must be positive")
	}

	if o.readTimeout > time.Hour {
		return fmt.Errorf("readTimeout must not exceed %s", time.Hour)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}
