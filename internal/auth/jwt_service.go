package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Variant tags the two independent principal types. Tokens carry the tag and
// each TokenService only accepts its own.
type Variant string

const (
	VariantAdmin Variant = "admin"
	VariantUser  Variant = "user"
)

// ContextKey names the echo context entry the guard fills with the resolved
// principal id.
func (v Variant) ContextKey() string {
	if v == VariantAdmin {
		return "adminID"
	}
	return "userID"
}

// ErrInvalidToken is returned for any verification failure: bad signature,
// malformed payload, expiry, or variant mismatch.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents the JWT claims bound to a principal.
type Claims struct {
	PrincipalID string  `json:"principal_id"`
	Email       string  `json:"email"`
	Variant     Variant `json:"variant"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens for one principal
// variant. The admin and user services hold different secrets, so a token
// minted by one never verifies against the other.
type TokenService struct {
	variant Variant
	secret  []byte
	ttl     time.Duration
}

// NewTokenService creates a token service for the given variant and secret.
func NewTokenService(variant Variant, secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		variant: variant,
		secret:  []byte(secret),
		ttl:     ttl,
	}
}

// Variant returns the principal variant this service signs for.
func (s *TokenService) Variant() Variant {
	return s.variant
}

// Generate signs a new token binding the principal id and email.
func (s *TokenService) Generate(principalID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		PrincipalID: principalID.String(),
		Email:       email,
		Variant:     s.variant,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token string and returns its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Cross-variant tokens already fail the signature check; the tag check
	// also covers deployments that configure both secrets to the same value.
	if claims.Variant != s.variant {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
