package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lendly/loan-tracker/internal/config"
	"github.com/lendly/loan-tracker/internal/domain"
	"github.com/lendly/loan-tracker/internal/repository"
	customError "github.com/lendly/loan-tracker/pkg/errors"
)

// AuthService implements the single-user login flow: credentials are
// compared against the configured literal pair, and a successful login
// leaves a session flag in the durable key-value store. The JWT carries the
// session ID; the store makes logout effective before the token expires.
type AuthService struct {
	sessions repository.SessionRepository
	cfg      config.AuthConfig
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewAuthService(sessions repository.SessionRepository, cfg *config.Config, logger *slog.Logger) *AuthService {
	return &AuthService{
		sessions: sessions,
		cfg:      cfg.Auth,
		ttl:      cfg.GetSessionTTL(),
		logger:   logger.With("component", "AuthService"),
		now:      time.Now,
	}
}

// Login checks the credential pair and on success issues a signed session
// token and writes the session flag.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.Password)) == 1
	if !userOK || !passOK {
		s.logger.Warn("login rejected", "username", req.Username)
		return nil, customError.WrapInvalidCredentials()
	}

	sessionID := uuid.NewString()
	expiresAt := s.now().Add(s.ttl)

	claims := jwt.MapClaims{
		"sub": req.Username,
		"jti": sessionID,
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Put(ctx, sessionID, s.ttl); err != nil {
		return nil, err
	}

	s.logger.Info("login accepted", "username", req.Username, "session_id", sessionID)
	return &domain.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Check validates a bearer token: signature, expiry and the session flag.
func (s *AuthService) Check(ctx context.Context, tokenString string) error {
	sessionID, err := s.sessionID(tokenString)
	if err != nil {
		return err
	}

	active, err := s.sessions.Exists(ctx, sessionID)
	if err != nil {
		return err
	}
	if !active {
		return customError.WrapSessionNotFound()
	}
	return nil
}

// Logout clears the session flag for the token. The call is idempotent.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	sessionID, err := s.sessionID(tokenString)
	if err != nil {
		return err
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info("session revoked", "session_id", sessionID)
	return nil
}

func (s *AuthService) sessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, customError.ErrSessionNotFound
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", customError.WrapSessionNotFound()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", customError.WrapSessionNotFound()
	}
	sessionID, _ := claims["jti"].(string)
	if sessionID == "" {
		return "", customError.WrapSessionNotFound()
	}
	return sessionID, nil
}
