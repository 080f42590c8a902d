package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	pkgAuth "github.com/polkiloo/canteen/internal/pkg/auth"
)

// AuthUseCase checks admin credentials and manages bearer tokens.
type AuthUseCase struct {
	admin  *model.Admin
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(admin *model.Admin, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{admin: admin, hasher: hasher, tokens: strategy}
}

// Login validates credentials and returns a signed token for the admin.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domainErrors.ErrInvalidCredentials
	}

	userMatch := pkgAuth.SecureEqual(username, u.admin.Username)
	// bcrypt runs even on a username miss so both failures take similar time.
	passErr := u.hasher.Compare(u.admin.PasswordHash, password)
	if !userMatch || passErr != nil {
		return "", domainErrors.ErrInvalidCredentials
	}

	return u.tokens.IssueToken(u.admin.Username)
}

// ParseToken extracts admin subject from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
