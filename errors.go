package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"
)

// ErrorKind discriminates the failure modes a call can surface. HTTP error
// statuses are never an ErrorKind; they come back as ordinary response
// envelopes.
type ErrorKind int

const (
	// KindConnection covers connection-level failures such as refused or
	// reset connections.
	KindConnection ErrorKind = iota
	// KindDNS covers name resolution failures.
	KindDNS
	// KindTLS covers TLS handshake and certificate verification failures.
	KindTLS
	// KindTimeout covers the connect and read timeouts. Timed-out calls are
	// never retried.
	KindTimeout
	// KindDecode covers response bodies inconsistent with their declared
	// content type.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindDNS:
		return "dns"
	case KindTLS:
		return "tls"
	case KindTimeout:
		return "timeout"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the error type returned for failed calls. Op identifies the
// request as "METHOD path".
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is a call that exceeded the connect or read
// timeout.
func IsTimeout(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindTimeout
}

// IsTransport reports whether err is a transport-level failure (connection,
// DNS, TLS, or timeout) as opposed to a decode failure.
func IsTransport(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind != KindDecode
}

// classifyTransportError maps a transport failure onto an ErrorKind. More
// specific causes are checked before the generic net.Error timeout test so
// a DNS lookup that times out still classifies as DNS.
func classifyTransportError(op string, err error) *Error {
	kind := KindConnection

	var dnsErr *net.DNSError
	var certErr *tls.CertificateVerificationError
	var recErr tls.RecordHeaderError
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		kind = KindTimeout
	case errors.As(err, &dnsErr):
		kind = KindDNS
	case errors.As(err, &certErr), errors.As(err, &recErr):
		kind = KindTLS
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
	}

	return &Error{Kind: kind, Op: op, Err: err}
}
