package jwt

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/fringe-portal/users"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims carried by an access token.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwtlib.RegisteredClaims
}

// Creator signs and verifies HS256 access tokens.
type Creator struct {
	secret []byte
	issuer string
	expiry time.Duration
}

func NewCreator(secret []byte, issuer string, expiry time.Duration) *Creator {
	return &Creator{
		secret: secret,
		issuer: issuer,
		expiry: expiry,
	}
}

// CreateAccessToken returns a signed token for account and its expiry time.
func (c *Creator) CreateAccessToken(account *users.Account) (string, time.Time, error) {
	now := NowTimeFunc()
	expiresAt := now.Add(c.expiry)

	claims := Claims{
		Email: account.Email,
		Roles: account.Roles,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   account.ID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			ID:        uuid.New().String(), // Unique token ID
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature, issuer and expiry of token.
func (c *Creator) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwtlib.ParseWithClaims(token, claims, func(t *jwtlib.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(c.issuer),
		jwtlib.WithTimeFunc(NowTimeFunc),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}
	return claims, nil
}
