package dto

import "github.com/shopspring/decimal"

// CategoryValueDTO valor de inventario por categoría (gráfico de barras).
type CategoryValueDTO struct {
	CategoryName string          `json:"category_name"`
	StockValue   decimal.Decimal `json:"stock_value"`
}

// StockLevelDTO nivel de stock de un producto (top del dashboard).
type StockLevelDTO struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
}

// DashboardSummaryDTO resumen estratégico del inventario:
// métricas globales, valor por categoría, top de stock, serie diaria de
// entradas/salidas y clasificación ABC del top 10.
type DashboardSummaryDTO struct {
	TotalInventoryValue decimal.Decimal    `json:"total_inventory_value"`
	CriticalItems       int                `json:"critical_items"`  // productos bajo el mínimo
	OutboundVolume      int64              `json:"outbound_volume"` // unidades salidas totales
	StarProduct         string             `json:"star_product"`    // mayor volumen de salida; vacío si no hay salidas
	ValueByCategory     []CategoryValueDTO `json:"value_by_category"`
	TopStockLevels      []StockLevelDTO    `json:"top_stock_levels"`
	DailyMovements      []DailyMovementDTO `json:"daily_movements"`
	ABC                 []ABCItemDTO       `json:"abc_classification"`
}
