package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/facturas-api/internal/application/billing"
	"github.com/invorya/facturas-api/internal/application/dto"
	"github.com/invorya/facturas-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
type InvoiceHandler struct {
	mutations *billing.InvoiceUseCase
	queries   *billing.QueryUseCase
	pdf       *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(mutations *billing.InvoiceUseCase, queries *billing.QueryUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{mutations: mutations, queries: queries, pdf: pdf}
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceForm  true  "customer_id, amount (unidades mayores), status"
// @Success      303   "Redirect al listado de facturas"
// @Failure      422   {object}  dto.MutationState
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state := h.mutations.Create(c.Context(), in)
	if state.Failed() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(state)
	}
	// Éxito: el resultado tipado del flujo se traduce aquí, y solo aquí, en el
	// redirect HTTP real.
	return c.Redirect(state.RedirectTo, fiber.StatusSeeOther)
}

// Update godoc
// @Summary      Actualizar factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "id de la factura"
// @Param        body  body  dto.InvoiceForm  true  "customer_id, amount, status (la fecha no se reenvía)"
// @Success      303   "Redirect al listado de facturas"
// @Failure      422   {object}  dto.MutationState
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.InvoiceForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state := h.mutations.Update(c.Context(), id, in)
	if state.Failed() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(state)
	}
	return c.Redirect(state.RedirectTo, fiber.StatusSeeOther)
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         invoices
// @Param        id  path  string  true  "id de la factura"
// @Success      204  "Factura ausente tras la operación (idempotente)"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	// Sin redirect: el llamador ya está en el listado y se apoya en la
	// invalidación de la vista.
	if err := h.mutations.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de base de datos"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listado de facturas con búsqueda y paginación
// @Tags         invoices
// @Produce      json
// @Param        query  query  string  false  "texto de búsqueda"
// @Param        page   query  int     false  "página (desde 1)"
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	query := c.Query("query", "")
	page := c.QueryInt("page", 1)
	out, err := h.queries.ListInvoices(c.Context(), query, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de base de datos"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Factura para el formulario de edición
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "id de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	invoice, err := h.queries.GetInvoice(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la factura no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de base de datos"})
	}
	return c.JSON(invoice)
}

// PDF godoc
// @Summary      PDF imprimible de la factura
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "id de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.pdf.InvoicePDF(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la factura no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura-`+id+`.pdf"`)
	return c.Send(data)
}
