package billing

import (
	"context"

	"github.com/invorya/facturas-api/internal/domain"
	"github.com/invorya/facturas-api/internal/domain/entity"
	"github.com/invorya/facturas-api/internal/domain/repository"
)

// InvoicePDFGenerator puerto hacia el renderizador de PDF (infraestructura).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}

// PDFUseCase arma los datos de la factura y delega el render al generador.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoices repository.InvoiceRepository, customers repository.CustomerRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, customers: customers, generator: generator}
}

// InvoicePDF devuelve los bytes del PDF de la factura id.
// ErrNotFound si la factura o su cliente no existen.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, id string) ([]byte, error) {
	invoice, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.GetByID(ctx, invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, customer)
}
