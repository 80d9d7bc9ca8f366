package auth

import (
	"auction-engine/internal/auctionerrors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified result of a credential check.
type Identity struct {
	BidderID string
	Role     string
}

// Authenticator validates an opaque credential token presented at connection
// time. It runs exactly once per connection, before any event is accepted,
// and must not touch auction state.
type Authenticator interface {
	Verify(token string) (Identity, error)
}

// JWTAuthenticator verifies HS256-signed tokens carrying the bidder identity
// in the "sub" claim and the role in the "role" claim.
type JWTAuthenticator struct {
	secret []byte
}

// NewJWTAuthenticator creates an authenticator for the given signing secret
func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(secret)}
}

// Verify parses and validates the token and extracts the bidder identity
func (a *JWTAuthenticator) Verify(token string) (Identity, error) {
	if token == "" {
		return Identity{}, fmt.Errorf("auth: missing credential: %w", auctionerrors.ErrAuthenticationFailed)
	}

	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		// Reject any signing method other than HMAC to prevent alg confusion.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, fmt.Errorf("auth: invalid credential: %w", auctionerrors.ErrAuthenticationFailed)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("auth: malformed claims: %w", auctionerrors.ErrAuthenticationFailed)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, fmt.Errorf("auth: missing subject claim: %w", auctionerrors.ErrAuthenticationFailed)
	}
	role, _ := claims["role"].(string)
	if role == "" {
		role = "bidder"
	}

	return Identity{BidderID: sub, Role: role}, nil
}

// SignCredential builds and signs an HS256 token for a bidder. Credential
// issuance belongs to the identity collaborator; this helper exists for seed
// tooling and tests.
func SignCredential(secret, bidderID, role string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  bidderID,
		"role": role,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("auth: sign credential: %w", err)
	}
	return signed, nil
}
