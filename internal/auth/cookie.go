// Package auth seals browser session identifiers into tamper-proof cookies.
package auth

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	tokenIssuer   = "blog-backend"
	tokenAudience = "blog-browser"

	// PASETO v4 symmetric key requirements.
	keyBytesSize = 32
	keyHexSize   = 64
)

// CookieCodec encrypts session ids into PASETO v4.local tokens.
type CookieCodec struct {
	symmetricKey paseto.V4SymmetricKey
	ttl          time.Duration
}

// NewCookieCodec creates a codec from a 64 character hex key. An empty key
// generates a random one, which invalidates cookies on every restart.
func NewCookieCodec(keyHex string, ttl time.Duration) (*CookieCodec, error) {
	if keyHex == "" {
		return &CookieCodec{symmetricKey: paseto.NewV4SymmetricKey(), ttl: ttl}, nil
	}
	if len(keyHex) != keyHexSize {
		return nil, fmt.Errorf("PASETO v4 key must be exactly %d hex characters (%d bytes), got %d", keyHexSize, keyBytesSize, len(keyHex))
	}

	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string for PASETO key: %w", err)
	}

	key, err := paseto.V4SymmetricKeyFromBytes(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create PASETO symmetric key: %w", err)
	}

	return &CookieCodec{symmetricKey: key, ttl: ttl}, nil
}

// TTL is the lifetime of sealed cookies.
func (c *CookieCodec) TTL() time.Duration {
	return c.ttl
}

// NewSessionID returns a fresh random browser session id.
func NewSessionID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return "sess-" + id, nil
}

// Seal encrypts sessionID into a cookie value that expires after the codec TTL.
func (c *CookieCodec) Seal(sessionID string) string {
	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuer(tokenIssuer)
	token.SetAudience(tokenAudience)
	token.SetSubject(sessionID)
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(c.ttl))

	return token.V4Encrypt(c.symmetricKey, nil)
}

// Open decrypts a cookie value and returns the session id it carries.
func (c *CookieCodec) Open(value string) (string, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.IssuedBy(tokenIssuer))
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ValidAt(time.Now()))

	token, err := parser.ParseV4Local(c.symmetricKey, value, nil)
	if err != nil {
		return "", fmt.Errorf("invalid session cookie: %w", err)
	}

	sessionID, err := token.GetSubject()
	if err != nil || sessionID == "" {
		return "", fmt.Errorf("invalid session cookie: missing subject")
	}
	return sessionID, nil
}
