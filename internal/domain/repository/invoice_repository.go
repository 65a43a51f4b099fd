package repository

import (
	"context"

	"github.com/invorya/facturas-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Cada operación de escritura es una única sentencia parametrizada; la
// atomicidad la garantiza la base de datos, no este puerto.
type InvoiceRepository interface {
	// Create inserta la factura y deja en invoice.ID el id asignado por la DB.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update reescribe solo los campos mutables (customer_id, amount, status).
	// Un id inexistente es un UPDATE de cero filas y no se reporta como error.
	Update(ctx context.Context, id, customerID string, amountCents int64, status entity.InvoiceStatus) error
	// Delete elimina por id. Borrar un id inexistente no es un error.
	Delete(ctx context.Context, id string) error
	// GetByID devuelve nil, nil si la factura no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// ListFiltered busca por nombre/email del cliente o por las formas de texto
	// de monto, fecha y estado, con paginación.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceWithCustomer, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	// Latest devuelve las últimas facturas por fecha (dashboard).
	Latest(ctx context.Context, limit int) ([]*entity.InvoiceWithCustomer, error)
	Count(ctx context.Context) (int, error)
	// SumByStatus devuelve los totales en centavos de facturas pagadas y pendientes.
	SumByStatus(ctx context.Context) (paidCents, pendingCents int64, err error)
}
