package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	authModel "apgi_backend/internals/features/admins/auth/model"
	authRepo "apgi_backend/internals/features/admins/auth/repository"
)

// ErrInvalidCredentials dipakai untuk username tidak dikenal maupun password
// salah, supaya respon keduanya identik.
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *authModel.AdminModel
}

type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := authRepo.FindAdminByUsername(ctx, s.DB, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		burnPasswordCheck(password)
		return nil, ErrInvalidCredentials
	}
	if err := CheckPasswordHash(admin.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, Admin: admin}, nil
}
