package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/threadline/catalog-api/internal/api/metrics"
	"github.com/threadline/catalog-api/internal/core/domain"
	"github.com/threadline/catalog-api/internal/core/ports"
)

// tokenTTL is the fixed lifetime of issued tokens.
const tokenTTL = 24 * time.Hour

// dummyHash is a syntactically valid bcrypt hash compared against when the
// username does not resolve, so unknown-user and wrong-password failures
// cost the same and are indistinguishable to the caller.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService verifies admin credentials and issues HS256 tokens.
type AuthService struct {
	repo      ports.AdminRepository
	limiter   ports.LoginLimiter // nil disables throttling
	jwtSecret string
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AdminRepository, limiter ports.LoginLimiter, jwtSecret string, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, limiter: limiter, jwtSecret: jwtSecret, logger: logger}
}

// Login verifies the username/password pair and returns a signed token.
// The username is trimmed and lowercased before lookup. Both unknown
// usernames and wrong passwords yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	username = NormalizeUsername(username)
	if username == "" {
		return "", nil, domain.NewValidationError("username", "username is required")
	}
	if password == "" {
		return "", nil, domain.NewValidationError("password", "password is required")
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, username)
		if err != nil {
			return "", nil, err
		}
		if !ok {
			metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
			s.logger.Warn().Str("username", username).Msg("login throttled")
			return "", nil, domain.ErrTooManyLoginAttempts
		}
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			// Burn a bcrypt verification anyway; see dummyHash.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			s.logger.Info().Str("username", username).Msg("login failed")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		s.logger.Info().Str("username", username).Msg("login failed")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("limiter reset failed")
		}
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", username).Msg("login succeeded")
	return token, admin, nil
}

func (s *AuthService) generateToken(admin *domain.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      admin.ID,
		"is_admin": true,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// NormalizeUsername lowercases and trims a submitted username. Admin
// lookups and the unique index both operate on this form.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
