package billing

import (
	"context"
	"time"

	"github.com/invorya/facturas-api/internal/application/dto"
	"github.com/invorya/facturas-api/internal/domain/entity"
	"github.com/invorya/facturas-api/internal/domain/repository"
	"github.com/invorya/facturas-api/pkg/logger"
)

// InvoicesPath ruta lógica del listado de facturas: destino del redirect tras
// crear/actualizar y clave de invalidación de la vista cacheada.
const InvoicesPath = "/dashboard/invoices"

// Mensajes de resumen y de error de persistencia. El error nativo de la DB
// nunca llega al usuario final, solo al log de operadores.
const (
	msgCreateMissing = "Faltan campos. No se pudo crear la factura"
	msgUpdateMissing = "Faltan campos. No se pudo actualizar la factura"
	msgCreateDBError = "Error de base de datos: no se pudo crear la factura"
	msgUpdateDBError = "Error de base de datos: no se pudo actualizar la factura"
)

// InvoiceUseCase flujo de mutación de facturas: validar → persistir →
// invalidar vista → redirigir. Es agnóstico del transporte: recibe DTOs y
// devuelve un resultado tipado; jamás toca tipos de fiber.
type InvoiceUseCase struct {
	repo  repository.InvoiceRepository
	views ViewInvalidator
	log   *logger.Logger
	now   func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. El repositorio llega inyectado
// (pool abierto en main, cerrado en shutdown); no hay estado a nivel de paquete.
func NewInvoiceUseCase(repo repository.InvoiceRepository, views ViewInvalidator, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, views: views, log: log, now: time.Now}
}

// Create valida el formulario, convierte el monto a centavos, fija la fecha
// actual (YYYY-MM-DD) y emite un único INSERT. La DB asigna el id.
func (uc *InvoiceUseCase) Create(ctx context.Context, form dto.InvoiceForm) dto.MutationState {
	fields, errs := CreateInvoiceSchema.Parse(form)
	if errs != nil {
		// Sin acceso a la DB: el formulario se re-renderiza con los errores por campo.
		return dto.MutationState{Errors: errs, Message: msgCreateMissing}
	}

	y, m, d := uc.now().Date()
	invoice := &entity.Invoice{
		CustomerID: fields.CustomerID,
		Amount:     fields.Cents,
		Status:     fields.Status,
		Date:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
	if err := uc.repo.Create(ctx, invoice); err != nil {
		uc.log.Error().Err(err).Str("customer_id", fields.CustomerID).Msg("insertar factura")
		return dto.MutationState{Message: msgCreateDBError}
	}

	// El redirect es un resultado tipado, no una señal que atraviese el manejo
	// de errores: a partir de aquí ya no hay rutas de fallo.
	uc.views.Invalidate(InvoicesPath)
	return dto.MutationState{RedirectTo: InvoicesPath}
}

// Update valida y reescribe solo los campos mutables de la factura id.
// La fecha y el id nunca se reescriben. Un id inexistente es un UPDATE de cero
// filas, indistinguible del éxito (comportamiento heredado, ver DESIGN.md).
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, form dto.InvoiceForm) dto.MutationState {
	fields, errs := UpdateInvoiceSchema.Parse(form)
	if errs != nil {
		return dto.MutationState{Errors: errs, Message: msgUpdateMissing}
	}

	if err := uc.repo.Update(ctx, id, fields.CustomerID, fields.Cents, fields.Status); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("actualizar factura")
		return dto.MutationState{Message: msgUpdateDBError}
	}

	uc.views.Invalidate(InvoicesPath)
	return dto.MutationState{RedirectTo: InvoicesPath}
}

// Delete emite el DELETE sin confirmación ni validación y luego invalida el
// listado. Idempotente: borrar un id ausente responde igual que un borrado
// efectivo. No redirige; el llamador ya está en el listado y se apoya solo en
// la invalidación. Un error de la DB se propaga al handler sin traducir aquí.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.views.Invalidate(InvoicesPath)
	return nil
}
