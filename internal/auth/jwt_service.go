package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kacameta/internal/model"
)

// DefaultSessionTTL is the session lifetime used when none is configured.
const DefaultSessionTTL = 24 * time.Hour

// ErrInvalidSession is the single error returned for any unusable token:
// bad signature, malformed payload, or past expiry. Callers must not be able
// to tell these apart.
var ErrInvalidSession = errors.New("invalid or expired session")

// Claims is the decoded payload of a session token.
type Claims struct {
	AdminID  uint       `json:"admin_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed session tokens. The token is the
// only session state: there is no server-side store and no revocation, a
// token stays valid until its expiry.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a session token service with the given secret and
// token lifetime.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Secret exposes the signing key for middleware that verifies tokens itself.
func (s *JWTService) Secret() []byte {
	return s.secret
}

// Issue mints a signed session token for a verified identity.
func (s *JWTService) Issue(identity *model.Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		AdminID:  identity.ID,
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the decoded claims.
// Verification is a pure read: decoding the same token twice yields the
// same claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.Role.Valid() {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
