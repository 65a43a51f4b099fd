package analytics

import (
	"context"

	"github.com/invorya/facturas-api/internal/application/dto"
	"github.com/invorya/facturas-api/internal/domain/repository"
	"github.com/invorya/facturas-api/pkg/money"
)

// latestCount facturas recientes mostradas en el dashboard.
const latestCount = 5

// DashboardUseCase lecturas agregadas de la página de inicio del dashboard:
// tarjetas resumen, gráfica de ingresos y últimas facturas.
type DashboardUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	revenue   repository.RevenueRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(invoices repository.InvoiceRepository, customers repository.CustomerRepository, revenue repository.RevenueRepository) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices, customers: customers, revenue: revenue}
}

// Cards devuelve los contadores y los totales pagado/pendiente formateados.
func (uc *DashboardUseCase) Cards(ctx context.Context) (*dto.CardsResponse, error) {
	invoiceCount, err := uc.invoices.Count(ctx)
	if err != nil {
		return nil, err
	}
	customerCount, err := uc.customers.Count(ctx)
	if err != nil {
		return nil, err
	}
	paid, pending, err := uc.invoices.SumByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CardsResponse{
		NumberOfInvoices:  invoiceCount,
		NumberOfCustomers: customerCount,
		TotalPaid:         money.FormatCents(paid),
		TotalPending:      money.FormatCents(pending),
	}, nil
}

// Revenue devuelve los ingresos mensuales para la gráfica.
func (uc *DashboardUseCase) Revenue(ctx context.Context) ([]dto.RevenueResponse, error) {
	list, err := uc.revenue.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RevenueResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.RevenueResponse{Month: r.Month, Revenue: r.Revenue})
	}
	return out, nil
}

// LatestInvoices devuelve las últimas facturas con los datos del cliente.
func (uc *DashboardUseCase) LatestInvoices(ctx context.Context) ([]dto.InvoiceRowResponse, error) {
	rows, err := uc.invoices.Latest(ctx, latestCount)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InvoiceRowResponse{
			ID:            r.ID,
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			ImageURL:      r.CustomerImage,
			Amount:        r.Amount,
			AmountText:    money.FormatCents(r.Amount),
			Status:        string(r.Status),
			Date:          r.Date.Format("2006-01-02"),
		})
	}
	return out, nil
}
