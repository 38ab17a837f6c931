package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Autopartes-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen estratégico del inventario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (valor total, ítems críticos, volumen de
// salida, producto estrella, valor por categoría, top de stock, serie diaria
// y curva ABC). No requiere parámetros.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(summary)
}
