package repository

import (
	"context"

	"github.com/invorya/facturas-api/internal/domain/entity"
)

// RevenueRepository puerto de lectura de ingresos mensuales (gráfica del dashboard).
type RevenueRepository interface {
	List(ctx context.Context) ([]*entity.Revenue, error)
}
