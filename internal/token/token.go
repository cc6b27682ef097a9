// Package token inspects stored bearer tokens so the CLI can show who a
// token belongs to and whether it has expired. Parsing never verifies
// the signature: the client holds no signing key, and the backend
// remains the only authority on token validity.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is the subset of JWT claims surfaced to the user.
type Info struct {
	Subject   string
	Email     string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Inspect decodes raw without verifying its signature.
func Inspect(raw string) (*Info, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	info := &Info{
		Subject: c.Subject,
		Email:   c.Email,
		Issuer:  c.Issuer,
	}
	if c.IssuedAt != nil {
		info.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		info.ExpiresAt = c.ExpiresAt.Time
	}
	return info, nil
}

// Expired reports whether the token carries an expiry in the past.
// A token without an exp claim is never considered expired.
func (i *Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}
