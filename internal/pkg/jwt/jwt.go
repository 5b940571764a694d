package jwt

import (
	"errors"
	"time"

	"petcare-booking/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Both errors match domain.ErrUnauthenticated
var (
	ErrTokenExpired = domain.NewError(domain.ErrUnauthenticated, "token has expired")
	ErrTokenInvalid = domain.NewError(domain.ErrUnauthenticated, "token is invalid")
)

// DefaultTTL is the lifetime of an issued token
const DefaultTTL = 7 * 24 * time.Hour

const issuer = "petcare-booking"

// Claims represents the JWT claims
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies signed tokens with a single shared secret
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a codec. A non-positive ttl falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token asserting the identity
func (c *Codec) Issue(identity domain.Identity) (string, error) {
	now := c.now()
	claims := Claims{
		UserID: identity.UserID,
		Role:   string(domain.ParseRole(string(identity.Role))),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify validates a token and returns the identity it asserts.
// The role is trusted as of issuance; storage is not consulted.
func (c *Codec) Verify(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrTokenExpired
		}
		return domain.Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return domain.Identity{}, ErrTokenInvalid
	}

	return domain.Identity{
		UserID: claims.UserID,
		Role:   domain.ParseRole(claims.Role),
	}, nil
}
