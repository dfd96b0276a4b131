// Package auth signs and verifies the bearer tokens handed to clients.
//
// A token carries one of two payload shapes, discriminated by its "type"
// claim: AccessPayload authorizes a single request, RefreshPayload can be
// exchanged for a new token pair while the session still stores the same
// refresh secret.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TypeAccess  TokenType = "ACCESS"
	TypeRefresh TokenType = "REFRESH"
)

// Payload is implemented by AccessPayload and RefreshPayload only.
type Payload interface {
	Type() TokenType
	payload()
}

type AccessPayload struct {
	UserID    string
	SessionID string
	Role      models.Role
}

func (AccessPayload) Type() TokenType { return TypeAccess }
func (AccessPayload) payload()        {}

type RefreshPayload struct {
	UserID       string
	SessionID    string
	RefreshToken string
}

func (RefreshPayload) Type() TokenType { return TypeRefresh }
func (RefreshPayload) payload()        {}

// Claims is the wire form of a payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string      `json:"userId"`
	SessionID    string      `json:"sessionId"`
	Type         TokenType   `json:"type"`
	Role         models.Role `json:"role,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
}

// Codec issues and verifies HS256 tokens with a shared secret.
type Codec struct {
	secret []byte
	now    func() time.Time
}

type Option func(*Codec)

// WithClock replaces time.Now for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

func NewCodec(secret []byte, opts ...Option) *Codec {
	c := &Codec{secret: secret, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Issue signs p with an expiry of now+ttl.
func (c *Codec) Issue(p Payload, ttl time.Duration) (string, error) {
	now := c.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	switch p := p.(type) {
	case AccessPayload:
		claims.UserID, claims.SessionID, claims.Role = p.UserID, p.SessionID, p.Role
	case RefreshPayload:
		claims.UserID, claims.SessionID, claims.RefreshToken = p.UserID, p.SessionID, p.RefreshToken
	default:
		return "", fmt.Errorf("unsupported payload %T", p)
	}
	claims.Type = p.Type()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and decodes the payload.
func (c *Codec) Verify(tokenString string) (Payload, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrSignatureInvalid
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if claims.UserID == "" || claims.SessionID == "" {
		return nil, common.ErrTokenMalformed
	}

	switch claims.Type {
	case TypeAccess:
		if !claims.Role.Valid() {
			return nil, common.ErrTokenMalformed
		}
		return AccessPayload{UserID: claims.UserID, SessionID: claims.SessionID, Role: claims.Role}, nil
	case TypeRefresh:
		if claims.RefreshToken == "" {
			return nil, common.ErrTokenMalformed
		}
		return RefreshPayload{UserID: claims.UserID, SessionID: claims.SessionID, RefreshToken: claims.RefreshToken}, nil
	default:
		return nil, common.ErrTokenMalformed
	}
}

// VerifyAccess is Verify restricted to access tokens.
func (c *Codec) VerifyAccess(tokenString string) (AccessPayload, error) {
	p, err := c.Verify(tokenString)
	if err != nil {
		return AccessPayload{}, err
	}
	switch p := p.(type) {
	case AccessPayload:
		return p, nil
	case RefreshPayload:
		return AccessPayload{}, common.ErrWrongTokenType
	default:
		return AccessPayload{}, common.ErrTokenMalformed
	}
}

// VerifyRefresh is Verify restricted to refresh tokens.
func (c *Codec) VerifyRefresh(tokenString string) (RefreshPayload, error) {
	p, err := c.Verify(tokenString)
	if err != nil {
		return RefreshPayload{}, err
	}
	switch p := p.(type) {
	case RefreshPayload:
		return p, nil
	case AccessPayload:
		return RefreshPayload{}, common.ErrWrongTokenType
	default:
		return RefreshPayload{}, common.ErrTokenMalformed
	}
}
