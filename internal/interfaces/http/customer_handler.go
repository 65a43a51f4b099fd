package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/facturas-api/internal/application/billing"
	"github.com/invorya/facturas-api/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido, solo lectura).
type CustomerHandler struct {
	queries *billing.QueryUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(queries *billing.QueryUseCase) *CustomerHandler {
	return &CustomerHandler{queries: queries}
}

// List GET /api/customers — selector del formulario de factura (id + nombre).
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.queries.ListCustomers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de base de datos"})
	}
	return c.JSON(list)
}

// Table GET /api/customers/table?query= — tabla con agregados de facturación.
func (h *CustomerHandler) Table(c *fiber.Ctx) error {
	query := c.Query("query", "")
	list, err := h.queries.CustomerTable(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de base de datos"})
	}
	return c.JSON(list)
}
