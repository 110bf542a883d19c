package gateway

import (
	"chat-ops/errors"
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type sessionStatus struct {
	Connected bool   `json:"connected"`
	Actor     string `json:"actor"`
}

// Preflight verifies the session is usable before a bulk run starts:
// the bearer token must not be expired and the gateway must report a
// connected session. Failing here is cheaper than failing on target one.
func (c *Client) Preflight(ctx context.Context) error {
	if err := checkTokenExpiry(c.token, time.Now()); err != nil {
		return err
	}

	var status sessionStatus
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/session/status")
	if err != nil {
		return fmt.Errorf("querying session status: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("querying session status: gateway returned %s", resp.Status())
	}
	if !status.Connected {
		return errors.ErrSessionDown
	}
	return nil
}

// checkTokenExpiry inspects the token's exp claim without verifying the
// signature; verification belongs to the gateway, we only want to fail
// fast on a token we know is stale. Opaque (non-JWT) tokens pass through.
func checkTokenExpiry(token string, now time.Time) error {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return nil
	}
	if expiry.Before(now) {
		return fmt.Errorf("token expired at %s: %w", expiry.Format(time.RFC3339), errors.ErrTokenExpired)
	}
	return nil
}
