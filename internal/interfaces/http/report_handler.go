package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/reports"
)

// ReportHandler maneja los endpoints de reportes de inventario.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// BelowMinimum godoc
// @Summary      Productos bajo stock mínimo
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/reports/below-minimum [get]
func (h *ReportHandler) BelowMinimum(c *fiber.Ctx) error {
	out, err := h.uc.BelowMinimum(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ExcessStock godoc
// @Summary      Productos con exceso de stock
// @Description  Stock actual mayor a 3 veces el mínimo.
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/reports/excess-stock [get]
func (h *ReportHandler) ExcessStock(c *fiber.Ctx) error {
	out, err := h.uc.ExcessStock(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Valuation godoc
// @Summary      Valoración de inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ValuationReportDTO
// @Router       /api/reports/valuation [get]
func (h *ReportHandler) Valuation(c *fiber.Ctx) error {
	out, err := h.uc.Valuation(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ValuationPDF godoc
// @Summary      Valoración de inventario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/valuation/pdf [get]
func (h *ReportHandler) ValuationPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ValuationPDF(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	filename := fmt.Sprintf("valoracion-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

// Turnover godoc
// @Summary      Giro de stock por producto
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.TurnoverItemDTO
// @Router       /api/reports/turnover [get]
func (h *ReportHandler) Turnover(c *fiber.Ctx) error {
	out, err := h.uc.Turnover(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Losses godoc
// @Summary      Pérdidas por producto
// @Description  Unidades con motivo Pérdida y su impacto financiero a costo actual.
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.LossItemDTO
// @Router       /api/reports/losses [get]
func (h *ReportHandler) Losses(c *fiber.Ctx) error {
	out, err := h.uc.Losses(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Reconciliation godoc
// @Summary      Conciliación de stock
// @Description  Compara el stock registrado de cada producto contra el implícito
//
//	en su historial de movimientos.
//
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.ReconciliationItemDTO
// @Router       /api/reports/reconciliation [get]
func (h *ReportHandler) Reconciliation(c *fiber.Ctx) error {
	out, err := h.uc.Reconciliation(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// CategoryValue godoc
// @Summary      Valor de inventario por categoría
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.CategoryValueDTO
// @Router       /api/reports/category-value [get]
func (h *ReportHandler) CategoryValue(c *fiber.Ctx) error {
	out, err := h.uc.CategoryValue(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// HistoricalStock godoc
// @Summary      Stock histórico de un producto
// @Tags         reports
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200   {object}  dto.HistoricalStockDTO
// @Router       /api/reports/historical-stock/{code} [get]
func (h *ReportHandler) HistoricalStock(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code es requerido"})
	}
	out, err := h.uc.HistoricalStock(c.Context(), code)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ABC godoc
// @Summary      Clasificación ABC (Pareto)
// @Description  Clasifica el top N de productos por valoración: clase A hasta el
//
//	80%% acumulado, B hasta el 95%%, C el resto.
//
// @Tags         reports
// @Produce      json
// @Param        top_n  query  int  false  "Productos a clasificar"  default(10)
// @Success      200    {object}  dto.ABCReportDTO
// @Router       /api/reports/abc [get]
func (h *ReportHandler) ABC(c *fiber.Ctx) error {
	topN := c.QueryInt("top_n", reports.DefaultABCTopN)
	out, err := h.uc.ABC(c.Context(), topN)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
