package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/inventory"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
	"github.com/jhoicas/Autopartes-api/pkg/validator"
)

// InventoryHandler maneja las peticiones HTTP de stock y movimientos.
type InventoryHandler struct {
	updateStock *inventory.UpdateStockUseCase
	movements   repository.MovementRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(updateStock *inventory.UpdateStockUseCase, movements repository.MovementRepository) *InventoryHandler {
	return &InventoryHandler{updateStock: updateStock, movements: movements}
}

// UpdateStock godoc
// @Summary      Ajustar stock de un producto
// @Description  Fija el stock en new_stock y registra el movimiento Entrada/Salida
//
//	correspondiente en la misma transacción. new_stock igual al actual
//	no genera movimiento.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "new_stock y motivo (Venta, Devolución, Pérdida, Ajuste)"
// @Success      200   {object}  dto.StockUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{code}/stock [put]
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code es requerido"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	out, err := h.updateStock.Execute(c.Context(), inventory.StockUpdateInput{
		Code:     code,
		NewStock: *in.NewStock,
		Reason:   in.Reason,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos de inventario
// @Description  Libro de movimientos, los más recientes primero. product_code vacío lista todos.
// @Tags         inventory
// @Produce      json
// @Param        product_code  query  string  false  "Filtrar por producto"
// @Param        limit         query  int     false  "Límite"   default(50)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	productCode := c.Query("product_code")
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.Normalize(50, 200)
	list, err := h.movements.List(productCode, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:          m.ID,
			ProductCode: m.ProductCode,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Reason:      m.Reason,
			CreatedAt:   m.CreatedAt,
		})
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}
