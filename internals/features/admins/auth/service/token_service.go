package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// AccessTokenTTL: tidak ada refresh token, setelah kedaluwarsa admin login ulang.
const AccessTokenTTL = 24 * time.Hour

var (
	ErrTokenMissing = errors.New("access token required")
	ErrTokenInvalid = errors.New("invalid token")
)

// AdminClaims adalah identitas admin yang ikut di dalam token.
type AdminClaims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    AccessTokenTTL,
		now:    time.Now,
	}
}

// Issue menandatangani token HS256 untuk admin. Mengembalikan juga waktu kedaluwarsa.
func (s *TokenService) Issue(adminID uint, username string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("JWT secret kosong")
	}
	now := s.now().UTC()
	exp := now.Add(s.ttl)
	claims := AdminClaims{
		ID:       adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(adminID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify mengecek signature + exp. Token kosong → ErrTokenMissing,
// selain itu semua kegagalan dibungkus ErrTokenInvalid.
func (s *TokenService) Verify(raw string) (*AdminClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrTokenMissing
	}

	claims := &AdminClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !tok.Valid || claims.ExpiresAt == nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
