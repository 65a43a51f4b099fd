package repository

import (
	"context"

	"github.com/invorya/facturas-api/internal/domain/entity"
)

// CustomerRepository puerto de lectura de clientes. El flujo de facturación
// nunca escribe clientes; la integridad del customer_id la aporta la FK.
type CustomerRepository interface {
	// GetByID devuelve nil, nil si el cliente no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// List devuelve todos los clientes ordenados por nombre (para el selector del formulario).
	List(ctx context.Context) ([]*entity.Customer, error)
	// ListFiltered devuelve clientes con agregados de facturación, filtrados por nombre o email.
	ListFiltered(ctx context.Context, query string) ([]*entity.CustomerSummary, error)
	Count(ctx context.Context) (int, error)
}
