package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en el catálogo.
// Code y Name son obligatorios y se validan antes de tocar la base.
type CreateProductRequest struct {
	Code         string          `json:"code" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	CategoryID   int             `json:"category_id" validate:"min=0"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CurrentStock int             `json:"current_stock" validate:"min=0"`
	MinStock     int             `json:"min_stock" validate:"min=0"`
}

// UpdateProductRequest edición parcial de campos del producto.
// No incluye current_stock: el stock solo cambia por el endpoint de stock,
// que registra el movimiento correspondiente.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	CategoryID  *int             `json:"category_id"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	MinStock    *int             `json:"min_stock"`
}

// ProductResponse representación plana del producto.
type ProductResponse struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   int             `json:"category_id"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CurrentStock int             `json:"current_stock"`
	MinStock     int             `json:"min_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CategoryResponse categoría con su conteo de productos.
type CategoryResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}
