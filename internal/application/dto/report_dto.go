package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Valoración ────────────────────────────────────────────────────────────────

// ValuationItemDTO valoración de inventario por producto.
type ValuationItemDTO struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CurrentStock int             `json:"current_stock"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	StockValue   decimal.Decimal `json:"stock_value"` // current_stock * unit_cost
}

// ValuationReportDTO reporte completo de valoración con total global.
type ValuationReportDTO struct {
	Items      []ValuationItemDTO `json:"items"`
	TotalValue decimal.Decimal    `json:"total_value"`
}

// ── Giro de stock ─────────────────────────────────────────────────────────────

// TurnoverItemDTO frecuencia y volumen de salidas por producto,
// ordenado por unidades salidas descendente.
type TurnoverItemDTO struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	MovementCount int    `json:"movement_count"`
	TotalOut      int64  `json:"total_out"`
}

// ── Pérdidas ──────────────────────────────────────────────────────────────────

// LossItemDTO pérdidas acumuladas por producto (motivo Pérdida).
type LossItemDTO struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	LostQuantity int64           `json:"lost_quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalLoss    decimal.Decimal `json:"total_loss"` // impacto financiero
}

// ── Conciliación ──────────────────────────────────────────────────────────────

// ReconciliationItemDTO stock registrado vs stock implícito en el libro.
type ReconciliationItemDTO struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	RecordedStock int    `json:"recorded_stock"`
	ComputedStock int64  `json:"computed_stock"`
	Matches       bool   `json:"matches"`
}

// HistoricalStockDTO stock implícito en el libro para un producto.
type HistoricalStockDTO struct {
	Code          string `json:"code"`
	ComputedStock int64  `json:"computed_stock"`
}

// ── Clasificación ABC ─────────────────────────────────────────────────────────

// ABCItemDTO producto clasificado en la curva ABC.
type ABCItemDTO struct {
	Rank          int             `json:"rank"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	StockValue    decimal.Decimal `json:"stock_value"`
	PctIndividual decimal.Decimal `json:"pct_individual"`
	PctCumulative decimal.Decimal `json:"pct_cumulative"`
	Class         string          `json:"class"` // A | B | C
}

// ABCReportDTO clasificación ABC del top N de productos por valoración.
type ABCReportDTO struct {
	TopN  int          `json:"top_n"`
	Items []ABCItemDTO `json:"items"`
}

// ── Series temporales ─────────────────────────────────────────────────────────

// DailyMovementDTO volumen diario por tipo de movimiento.
type DailyMovementDTO struct {
	Day           time.Time `json:"day"`
	Type          string    `json:"type"`
	TotalQuantity int64     `json:"total_quantity"`
}
