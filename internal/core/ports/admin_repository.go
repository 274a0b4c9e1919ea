package ports

import (
	"context"

	"github.com/threadline/catalog-api/internal/core/domain"
)

// AdminRepository defines persistence for admin accounts. The API only
// reads admins; Create exists for the provisioning tool.
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}
