package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/restofront/apiserver/config"
	"github.com/restofront/apiserver/types"
)

// Claims is the signed claim set carried by a session token. The role is
// a snapshot taken at issuance; authorization decisions use the live
// record, not this field.
type Claims struct {
	Role types.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens. It is immutable after
// construction and safe for concurrent use.
type TokenCodec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenCodec builds a codec from validated auth configuration.
func NewTokenCodec(cfg config.AuthConfig) (*TokenCodec, error) {
	var method jwt.SigningMethod
	switch cfg.JWTAlgorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.JWTAlgorithm)
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	return &TokenCodec{
		secret: []byte(cfg.JWTSecret),
		method: method,
		ttl:    time.Duration(cfg.TokenTTLMins) * time.Minute,
	}, nil
}

// Encode issues a signed token for the subject with an absolute expiry of
// now plus the configured window.
func (c *TokenCodec) Encode(subject string, role types.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(c.method, claims)
	return token.SignedString(c.secret)
}

// Decode verifies the signature, signing method, and expiry before any
// claim is trusted. Every failure collapses to ErrInvalidToken.
func (c *TokenCodec) Decode(tokenString string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != c.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// TTL exposes the configured expiry window.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}
