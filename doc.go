// Package client provides an HTTP client for the Kestrel VMS REST API.
//
// The client wraps [github.com/go-resty/resty/v2] and exposes one method per
// API endpoint, all funnelled through a single dispatcher that handles
// authentication, URL construction, and response typing.
//
// # Basic Usage
//
//	c, err := client.New("https://vms.example.com",
//	    client.WithBasicAuth("admin", "password"),
//	    client.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	resp, err := c.Cameras(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.StatusCode, resp.Body.JSON)
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// resulting option set is validated by [New] before the client is returned.
// Connect and read timeouts can be set together with [WithTimeout] or
// independently with [WithConnectTimeout] and [WithReadTimeout].
//
// # Authentication
//
// HTTP Basic authentication is configured with [WithBasicAuth]; an explicit
// credential ([Basic] or [Bearer]) is supplied with [WithCredential]. When
// both are given, [WithBasicAuth] wins. Session endpoints return tokens
// rather than accepting them at construction, so [Client.SetBearerToken]
// swaps the active credential for a bearer token after a session is created;
// [Client.LoginUser] does the create-and-swap in one step.
//
// # Response Typing
//
// Every call returns a [Response] whose Body is decoded once, keyed on the
// Content-Type header: application/json becomes a decoded JSON value, any
// text subtype becomes a string, and everything else stays raw bytes.
// HTTP error statuses (4xx/5xx) are not Go errors; the envelope is returned
// for the caller to inspect. Only transport failures (connection, DNS, TLS,
// timeout) and undecodable bodies produce a non-nil error, typed as [*Error].
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use the bundled [ZerologLogger].
// The default [NoopLogger] discards all log output. Ensure your
// implementation redacts credentials and tokens before persisting logs.
package client
