package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"art_academy/internal/lib/jwt"
	"art_academy/internal/lib/logger/sl"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Auth guards the admin panel with a single bcrypt-hashed password.
type Auth struct {
	log          *slog.Logger
	passwordHash []byte
	secret       string
	tokenTTL     time.Duration
}

func New(log *slog.Logger, passwordHash, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		log:          log,
		passwordHash: []byte(passwordHash),
		secret:       secret,
		tokenTTL:     tokenTTL,
	}
}

// Login checks the admin password and returns a signed access token.
func (a *Auth) Login(ctx context.Context, password string) (string, error) {
	const op = "auth.Login"

	log := a.log.With(slog.String("op", op))

	log.Info("attempting to login admin")

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := jwt.NewToken(a.secret, a.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in successfully")

	return token, nil
}

func (a *Auth) Secret() string {
	return a.secret
}

func (a *Auth) TokenTTL() time.Duration {
	return a.tokenTTL
}

// HashPassword produces a value suitable for auth.admin_password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth.HashPassword: %w", err)
	}

	return string(hash), nil
}
