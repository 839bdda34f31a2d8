package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type issuerKey struct {
	Kty string `json:"kty"`
	K   string `json:"k"`
}

type trustedIssuerRequest struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	Key         issuerKey `json:"key"`
	Description string    `json:"description"`
	URI         string    `json:"uri"`
}

// TrustedIssuer retrieves the currently registered trusted issuer. The
// server answers 404 when none is registered.
func (c *Client) TrustedIssuer(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/trusted/issuer")
}

// CreateTrustedIssuer registers a trusted JWT issuer on the server
// identified by serverID. secret is the 32-byte shared secret used to sign
// issuer tokens; it is transmitted as a URL-safe base64 "oct" JWK.
func (c *Client) CreateTrustedIssuer(ctx context.Context, serverID uuid.UUID, secret []byte, description, uri string) (*Response, error) {
	body := trustedIssuerRequest{
		ID:          serverID.String(),
		AccessToken: "",
		Key: issuerKey{
			Kty: "oct",
			K:   base64.URLEncoding.EncodeToString(secret),
		},
		Description: description,
		URI:         uri,
	}
	return c.post(ctx, "/trusted/issuer?version=2", body)
}

// DeleteTrustedIssuer removes the trusted issuer. Sessions bootstrapped
// through it are invalidated; the server answers 401 on their next call.
func (c *Client) DeleteTrustedIssuer(ctx context.Context) (*Response, error) {
	return c.delete(ctx, "/trusted/issuer")
}

// TrustedIssuerToken signs a bearer token with the trusted issuer's shared
// secret (HS256, iat and exp claims). The token is accepted by the server
// for ttl from now, and is used with [Bearer] or [Client.SetBearerToken].
func TrustedIssuerToken(secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign trusted issuer token: %w", err)
	}
	return token, nil
}

// BootstrapTrustedIssuer registers secret as the trusted issuer for this
// server and returns a signed bearer token valid for ttl. The server's UUID
// is looked up through the discovery endpoint. The client's own credential
// is left untouched; pass the returned token to [Client.SetBearerToken] or a
// fresh client's [WithCredential].
func (c *Client) BootstrapTrustedIssuer(ctx context.Context, secret []byte, description string, ttl time.Duration) (string, error) {
	resp, err := c.DiscoveredServer(ctx, 1)
	if err != nil {
		return "", err
	}
	server, ok := resp.Body.Map()
	if !ok {
		return "", fmt.Errorf("discover server: unexpected response (status %d)", resp.StatusCode)
	}
	rawID, _ := server["uuid"].(string)
	serverID, err := uuid.Parse(rawID)
	if err != nil {
		return "", fmt.Errorf("discover server: parse uuid %q: %w", rawID, err)
	}

	resp, err = c.CreateTrustedIssuer(ctx, serverID, secret, description, "")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("create trusted issuer: status %d", resp.StatusCode)
	}

	return TrustedIssuerToken(secret, ttl)
}
