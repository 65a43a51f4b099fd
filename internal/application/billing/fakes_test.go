package billing_test

import (
	"context"

	"github.com/invorya/facturas-api/internal/domain/entity"
	"github.com/invorya/facturas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test compartidos por los tests del paquete billing.
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

// fakeInvoiceRepo repositorio de facturas en memoria que registra cada escritura.
type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	nextID   string

	createErr error
	updateErr error
	deleteErr error

	inserts int
	updates int
	deletes int

	filtered      []*entity.InvoiceWithCustomer
	filteredTotal int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice), nextID: "inv-generated"}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.inserts++
	invoice.ID = f.nextID
	clone := *invoice
	f.invoices[invoice.ID] = &clone
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, id, customerID string, amountCents int64, status entity.InvoiceStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	// Mismo contrato que el UPDATE real: cero filas afectadas no es un error.
	if inv, ok := f.invoices[id]; ok {
		inv.CustomerID = customerID
		inv.Amount = amountCents
		inv.Status = status
	}
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes++
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	clone := *inv
	return &clone, nil
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, _ string, limit, offset int) ([]*entity.InvoiceWithCustomer, error) {
	if offset >= len(f.filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.filtered) {
		end = len(f.filtered)
	}
	return f.filtered[offset:end], nil
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, _ string) (int, error) {
	return f.filteredTotal, nil
}

func (f *fakeInvoiceRepo) Latest(_ context.Context, limit int) ([]*entity.InvoiceWithCustomer, error) {
	if limit > len(f.filtered) {
		limit = len(f.filtered)
	}
	return f.filtered[:limit], nil
}

func (f *fakeInvoiceRepo) Count(_ context.Context) (int, error) {
	return len(f.invoices), nil
}

func (f *fakeInvoiceRepo) SumByStatus(_ context.Context) (int64, int64, error) {
	var paid, pending int64
	for _, inv := range f.invoices {
		if inv.Status == entity.StatusPaid {
			paid += inv.Amount
		} else {
			pending += inv.Amount
		}
	}
	return paid, pending, nil
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

// fakeCustomerRepo repositorio de clientes en memoria (solo lectura).
type fakeCustomerRepo struct {
	customers []*entity.Customer
	summaries []*entity.CustomerSummary
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerRepo) ListFiltered(_ context.Context, _ string) ([]*entity.CustomerSummary, error) {
	return f.summaries, nil
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int, error) {
	return len(f.customers), nil
}

// recordingViews implementa billing.ViewInvalidator registrando cada invalidación.
type recordingViews struct {
	paths []string
}

func (r *recordingViews) Invalidate(path string) {
	r.paths = append(r.paths, path)
}
