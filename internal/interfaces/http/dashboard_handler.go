package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inmuebles-api/internal/application/usecase"
)

// DashboardHandler expone el resumen del panel (protegido, solo lectura).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve los agregados globales y por propiedad, acotados al rol.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), AccessFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
