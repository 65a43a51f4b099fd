package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/facturas-api/internal/application/analytics"
	"github.com/invorya/facturas-api/internal/application/dto"
)

// DashboardHandler maneja las lecturas agregadas de la página de inicio (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Cards GET /api/dashboard/cards
func (h *DashboardHandler) Cards(c *fiber.Ctx) error {
	out, err := h.uc.Cards(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de base de datos"})
	}
	return c.JSON(out)
}

// Revenue GET /api/dashboard/revenue
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	out, err := h.uc.Revenue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de base de datos"})
	}
	return c.JSON(out)
}

// LatestInvoices GET /api/invoices/latest
func (h *DashboardHandler) LatestInvoices(c *fiber.Ctx) error {
	out, err := h.uc.LatestInvoices(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de base de datos"})
	}
	return c.JSON(out)
}
