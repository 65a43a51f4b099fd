package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/facturas-api/internal/domain/entity"
	"github.com/invorya/facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create inserta la factura en una única sentencia. El id lo asigna la DB
// (DEFAULT uuid) y se devuelve con RETURNING hacia invoice.ID.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date,
	).Scan(&invoice.ID)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update reescribe los tres campos mutables. id y date nunca se tocan.
// Cero filas afectadas (id inexistente) no es un error.
func (r *InvoiceRepo) Update(ctx context.Context, id, customerID string, amountCents int64, status entity.InvoiceStatus) error {
	query := `
		UPDATE invoices SET customer_id = $2, amount = $3, status = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, customerID, amountCents, string(status))
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina por id. Un id que no matchea filas responde igual que un
// borrado efectivo.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura. Devuelve nil, nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListFiltered busca en nombre/email del cliente y en las formas de texto de
// monto, fecha y estado, ordenado por fecha descendente, con paginación.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceWithCustomer, error) {
	sql := `
		SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE customers.name ILIKE $1
		   OR customers.email ILIKE $1
		   OR invoices.amount::text ILIKE $1
		   OR invoices.date::text ILIKE $1
		   OR invoices.status ILIKE $1
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

// CountFiltered cuenta las facturas que matchean la búsqueda.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE customers.name ILIKE $1
		   OR customers.email ILIKE $1
		   OR invoices.amount::text ILIKE $1
		   OR invoices.date::text ILIKE $1
		   OR invoices.status ILIKE $1`
	var count int
	if err := r.q.QueryRow(ctx, sql, likePattern(query)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// Latest devuelve las últimas facturas por fecha con los datos del cliente.
func (r *InvoiceRepo) Latest(ctx context.Context, limit int) ([]*entity.InvoiceWithCustomer, error) {
	sql := `
		SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("latest invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

// Count cuenta todas las facturas.
func (r *InvoiceRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count all invoices: %w", err)
	}
	return count, nil
}

// SumByStatus devuelve los totales en centavos por estado en una sola pasada.
func (r *InvoiceRepo) SumByStatus(ctx context.Context) (paidCents, pendingCents int64, err error) {
	sql := `
		SELECT COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
		FROM invoices`
	if err := r.q.QueryRow(ctx, sql).Scan(&paidCents, &pendingCents); err != nil {
		return 0, 0, fmt.Errorf("sum invoices by status: %w", err)
	}
	return paidCents, pendingCents, nil
}

func scanInvoiceRows(rows pgx.Rows) ([]*entity.InvoiceWithCustomer, error) {
	var list []*entity.InvoiceWithCustomer
	for rows.Next() {
		var r entity.InvoiceWithCustomer
		if err := rows.Scan(
			&r.ID, &r.CustomerID, &r.Amount, &r.Status, &r.Date,
			&r.CustomerName, &r.CustomerEmail, &r.CustomerImage,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &r)
	}
	return list, rows.Err()
}

func likePattern(query string) string {
	return "%" + query + "%"
}
