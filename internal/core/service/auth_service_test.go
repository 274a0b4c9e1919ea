package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/threadline/catalog-api/internal/core/domain"
)

type stubAdminRepo struct {
	admins map[string]*domain.Admin
	calls  int
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) add(t *testing.T, username, password string) *domain.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := &domain.Admin{
		ID:           "64f1b2c3d4e5f60718293a4b",
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	r.admins[username] = admin
	return admin
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	r.calls++
	admin, ok := r.admins[username]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *admin
	return &clone, nil
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if _, exists := r.admins[admin.Username]; exists {
		return nil, domain.ErrAdminExists
	}
	r.admins[admin.Username] = admin
	return admin, nil
}

type stubLimiter struct {
	allow  bool
	allows int
	resets int
}

func (l *stubLimiter) Allow(context.Context, string) (bool, error) {
	l.allows++
	return l.allow, nil
}

func (l *stubLimiter) Reset(context.Context, string) error {
	l.resets++
	return nil
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAdminRepo()
	admin := repo.add(t, "admin", "s3cret")
	svc := NewAuthService(repo, nil, "signing-key", zerolog.Nop())

	token, got, err := svc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if got.ID != admin.ID || got.Username != "admin" {
		t.Fatalf("unexpected admin: %+v", got)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("signing-key"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != admin.ID {
		t.Fatalf("expected sub %q, got %v", admin.ID, claims["sub"])
	}
	if claims["is_admin"] != true {
		t.Fatalf("expected is_admin true, got %v", claims["is_admin"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected numeric exp, got %T", claims["exp"])
	}
	until := time.Until(time.Unix(int64(exp), 0))
	if until < 23*time.Hour || until > 25*time.Hour {
		t.Fatalf("expected ~24h expiry, got %v", until)
	}
}

func TestAuthService_Login_NormalizesUsername(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add(t, "admin", "s3cret")
	svc := NewAuthService(repo, nil, "signing-key", zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "  ADMIN  ", "s3cret"); err != nil {
		t.Fatalf("expected normalized lookup to succeed, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add(t, "admin", "s3cret")
	svc := NewAuthService(repo, nil, "signing-key", zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	repo := newStubAdminRepo()
	svc := NewAuthService(repo, nil, "signing-key", zerolog.Nop())

	// Unknown username and wrong password must be indistinguishable.
	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	repo := newStubAdminRepo()
	svc := NewAuthService(repo, nil, "signing-key", zerolog.Nop())

	var ve *domain.ValidationError
	if _, _, err := svc.Login(context.Background(), "   ", "pass"); !errors.As(err, &ve) || ve.Field != "username" {
		t.Fatalf("expected username validation error, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "admin", ""); !errors.As(err, &ve) || ve.Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo should not be consulted on validation failure, got %d calls", repo.calls)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add(t, "admin", "s3cret")
	limiter := &stubLimiter{allow: false}
	svc := NewAuthService(repo, limiter, "signing-key", zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "admin", "s3cret")
	if !errors.Is(err, domain.ErrTooManyLoginAttempts) {
		t.Fatalf("expected ErrTooManyLoginAttempts, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("throttled login must not reach the repository")
	}
}

func TestAuthService_Login_ResetsLimiterOnSuccess(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add(t, "admin", "s3cret")
	limiter := &stubLimiter{allow: true}
	svc := NewAuthService(repo, limiter, "signing-key", zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "admin", "s3cret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if limiter.allows != 1 || limiter.resets != 1 {
		t.Fatalf("expected one Allow and one Reset, got %d/%d", limiter.allows, limiter.resets)
	}
}

func TestNormalizeUsername(t *testing.T) {
	cases := map[string]string{
		"  Admin ": "admin",
		"ADMIN":    "admin",
		"admin":    "admin",
		"   ":      "",
	}
	for in, want := range cases {
		if got := NormalizeUsername(in); got != want {
			t.Fatalf("NormalizeUsername(%q) = %q, want %q", in, got, want)
		}
	}
}
