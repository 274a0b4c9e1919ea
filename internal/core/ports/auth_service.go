package ports

import (
	"context"

	"github.com/threadline/catalog-api/internal/core/domain"
)

// AuthService verifies admin credentials and issues signed tokens.
type AuthService interface {
	// Login checks the username/password pair and, on success, returns a
	// signed bearer token together with the matched admin.
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
}
