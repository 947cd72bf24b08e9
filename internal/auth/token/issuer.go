// Package token mints and validates the signed session tokens issued after
// a successful signup, signin or social login. Tokens are stateless; the
// issuer keeps no record of what it has minted.
package token

import (
	"errors"
	"strconv"
	"time"

	authdomain "habitly-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. Every one is surfaced distinctly so callers can
// special-case expiry for refresh flows.
var (
	ErrBadSignature      = errors.New("invalid token signature")
	ErrMalformed         = errors.New("malformed token")
	ErrExpired           = errors.New("token expired")
	ErrUnsupportedFormat = errors.New("unsupported token format")
	ErrEmptyClaims       = errors.New("token claims empty")
)

// Claims carried by both access and refresh tokens. The two are structurally
// identical and differ only in configured lifetime.
type Claims struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs tokens with a shared HMAC-SHA512 secret. Secret and the two
// lifetimes are injected at construction; there is no process-wide state.
type Issuer struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewIssuer(secret string, accessExpiry, refreshExpiry time.Duration) *Issuer {
	return &Issuer{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (i *Issuer) CreateAccessToken(user *authdomain.User) (string, error) {
	return i.Mint(user, i.accessExpiry)
}

func (i *Issuer) CreateRefreshToken(user *authdomain.User) (string, error) {
	return i.Mint(user, i.refreshExpiry)
}

// Mint signs a token for the user with the given lifetime. Subject is the
// user id in decimal; email and username ride along as claims.
func (i *Issuer) Mint(user *authdomain.User, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
	if user.Email != nil {
		claims.Email = *user.Email
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(i.secret)
}

// Validate parses and verifies the token and returns its subject user id.
func (i *Issuer) Validate(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrEmptyClaims
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, i.keyfunc)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedFormat):
			return 0, ErrUnsupportedFormat
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrBadSignature
		default:
			// Structural problems and anything else the parser rejects.
			return 0, ErrMalformed
		}
	}

	if claims.Subject == "" {
		return 0, ErrEmptyClaims
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrMalformed
	}
	return uint(id), nil
}

// ExtractSubject is the accessor used by authenticated-route middleware.
// Its contract is identical to Validate.
func (i *Issuer) ExtractSubject(tokenString string) (uint, error) {
	return i.Validate(tokenString)
}

// keyfunc rejects any signing algorithm other than HS512 before handing the
// secret to the verifier.
func (i *Issuer) keyfunc(t *jwt.Token) (interface{}, error) {
	if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
		return nil, ErrUnsupportedFormat
	}
	return i.secret, nil
}
