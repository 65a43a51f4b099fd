package billing

import (
	"context"

	"github.com/invorya/facturas-api/internal/application/dto"
	"github.com/invorya/facturas-api/internal/domain"
	"github.com/invorya/facturas-api/internal/domain/entity"
	"github.com/invorya/facturas-api/internal/domain/repository"
	"github.com/invorya/facturas-api/pkg/money"
)

// PageSize facturas por página del listado.
const PageSize = 6

// QueryUseCase lecturas del dashboard de facturación: listado con búsqueda y
// paginación, factura individual para el formulario de edición y clientes.
type QueryUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
}

// NewQueryUseCase construye el caso de uso de lecturas.
func NewQueryUseCase(invoices repository.InvoiceRepository, customers repository.CustomerRepository) *QueryUseCase {
	return &QueryUseCase{invoices: invoices, customers: customers}
}

// ListInvoices devuelve la página pedida del listado filtrado más el total de
// páginas para el paginador. page arranca en 1.
func (uc *QueryUseCase) ListInvoices(ctx context.Context, query string, page int) (*dto.InvoiceListResponse, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	total, err := uc.invoices.CountFiltered(ctx, query)
	if err != nil {
		return nil, err
	}
	rows, err := uc.invoices.ListFiltered(ctx, query, PageSize, offset)
	if err != nil {
		return nil, err
	}

	out := &dto.InvoiceListResponse{
		Invoices:   make([]dto.InvoiceRowResponse, 0, len(rows)),
		Page:       page,
		TotalPages: (total + PageSize - 1) / PageSize,
	}
	for _, r := range rows {
		out.Invoices = append(out.Invoices, toInvoiceRow(r))
	}
	return out, nil
}

// GetInvoice devuelve la factura para el formulario de edición, con el monto
// de vuelta en unidades mayores (centavos / 100).
func (uc *QueryUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.FromCents(inv.Amount).StringFixed(2),
		Status:     string(inv.Status),
		Date:       inv.Date.Format("2006-01-02"),
	}, nil
}

// ListCustomers devuelve todos los clientes ordenados por nombre (selector del formulario).
func (uc *QueryUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerResponse{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}
	return out, nil
}

// CustomerTable devuelve la tabla de clientes con agregados, filtrada por nombre o email.
func (uc *QueryUseCase) CustomerTable(ctx context.Context, query string) ([]dto.CustomerSummaryResponse, error) {
	list, err := uc.customers.ListFiltered(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerSummaryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerSummaryResponse{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  money.FormatCents(c.TotalPending),
			TotalPaid:     money.FormatCents(c.TotalPaid),
		})
	}
	return out, nil
}

func toInvoiceRow(r *entity.InvoiceWithCustomer) dto.InvoiceRowResponse {
	return dto.InvoiceRowResponse{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		ImageURL:      r.CustomerImage,
		Amount:        r.Amount,
		AmountText:    money.FormatCents(r.Amount),
		Status:        string(r.Status),
		Date:          r.Date.Format("2006-01-02"),
	}
}
