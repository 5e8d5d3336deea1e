package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursehub/internal/auth"
	"coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup and login for one principal variant. The same
// implementation is instantiated twice: once over the admins table with the
// admin token service, once over the users table with the user token service.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*model.Principal, error)
	Login(ctx context.Context, email, password string) (token string, principal *model.Principal, err error)
}

type authService struct {
	principals repository.PrincipalRepository
	tokens     *auth.TokenService
}

// NewAuthService creates an auth service bound to one variant's repository
// and token service.
func NewAuthService(principals repository.PrincipalRepository, tokens *auth.TokenService) AuthService {
	return &authService{
		principals: principals,
		tokens:     tokens,
	}
}

// Register creates a new principal with a hashed password. The returned
// record never carries the plaintext; the hash is excluded from JSON.
func (s *authService) Register(ctx context.Context, firstName, lastName, email, password string) (*model.Principal, error) {
	// Pre-check for a friendlier error; the unique index remains the
	// authoritative guard against concurrent signups.
	existing, err := s.principals.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrDuplicateEmail
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	principal := &model.Principal{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.principals.Create(ctx, principal); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create principal: %w", err)
	}

	return principal, nil
}

// Login authenticates a principal and issues a variant-signed token. Unknown
// email and wrong password intentionally return the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Principal, error) {
	principal, err := s.principals.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(principal.ID, principal.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, principal, nil
}
