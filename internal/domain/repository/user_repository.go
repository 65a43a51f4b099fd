package repository

import (
	"context"

	"github.com/invorya/facturas-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios del dashboard.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve nil, nil si no existe usuario con ese email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
