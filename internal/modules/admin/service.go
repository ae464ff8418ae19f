// README: Admin auth; bcrypt credential check and session lifecycle.
// Deliberately simple: one configured operator account for the back office,
// not a general identity system.
package admin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotConfigured      = errors.New("admin access is not configured")
)

type Service struct {
	username     string
	passwordHash string
	sessionTTL   time.Duration
	sessions     SessionStore
	log          *zap.Logger
}

func NewService(username, passwordHash string, sessionTTL time.Duration, sessions SessionStore, log *zap.Logger) *Service {
	return &Service{
		username:     username,
		passwordHash: passwordHash,
		sessionTTL:   sessionTTL,
		sessions:     sessions,
		log:          log,
	}
}

// Login checks the credentials against the configured bcrypt hash and
// issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if s.passwordHash == "" {
		return "", ErrNotConfigured
	}
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	token := uuid.NewString()
	if err := s.sessions.Set(ctx, token, s.sessionTTL); err != nil {
		return "", err
	}
	s.log.Info("admin login", zap.String("username", username))
	return token, nil
}

// Validate reports whether the token names a live session.
func (s *Service) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	ok, err := s.sessions.Exists(ctx, token)
	if err != nil {
		s.log.Warn("session lookup failed", zap.Error(err))
		return false
	}
	return ok
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
