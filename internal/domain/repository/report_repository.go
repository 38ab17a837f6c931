package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
)

// ValuationRow valoración de inventario de un producto (stock * costo).
type ValuationRow struct {
	Code         string
	Name         string
	CurrentStock int
	UnitCost     decimal.Decimal
	StockValue   decimal.Decimal
}

// TurnoverRow giro de stock: frecuencia y volumen de salidas de un producto.
type TurnoverRow struct {
	Code          string
	Name          string
	MovementCount int   // número de movimientos de salida
	TotalOut      int64 // unidades totales salidas
}

// LossRow pérdidas acumuladas de un producto (movimientos con motivo Pérdida).
type LossRow struct {
	Code         string
	Name         string
	LostQuantity int64
	UnitCost     decimal.Decimal
	TotalLoss    decimal.Decimal // LostQuantity * UnitCost
}

// ReconciliationRow compara el stock registrado contra el implícito en el libro.
// ComputedStock = SUM(entradas) - SUM(salidas); productos sin movimientos
// aparecen con cero calculado.
type ReconciliationRow struct {
	Code          string
	Name          string
	RecordedStock int
	ComputedStock int64
}

// CategoryValueRow valor de inventario agrupado por categoría.
type CategoryValueRow struct {
	CategoryName string
	StockValue   decimal.Decimal
}

// StockLevelRow nivel de stock de un producto (para el top del dashboard).
type StockLevelRow struct {
	Code         string
	Name         string
	CurrentStock int
}

// DailyMovementRow volumen diario por tipo de movimiento (serie temporal).
type DailyMovementRow struct {
	Day           time.Time
	Type          string // Entrada | Salida
	TotalQuantity int64
}

// ReportRepository define las consultas de solo lectura sobre catálogo y libro
// de movimientos. Las implementaciones no modifican datos y deben tolerar
// catálogo o libro vacíos (slices vacíos / ceros, nunca error).
type ReportRepository interface {
	// HistoricalStock devuelve el stock implícito en el libro para un producto:
	// suma de entradas menos suma de salidas. No lee current_stock.
	HistoricalStock(ctx context.Context, productCode string) (int64, error)

	BelowMinimum(ctx context.Context) ([]*entity.Product, error)
	ExcessStock(ctx context.Context) ([]*entity.Product, error)

	Valuation(ctx context.Context) ([]ValuationRow, error)
	TotalValuation(ctx context.Context) (decimal.Decimal, error)
	// TopValuations devuelve los `limit` productos de mayor valoración,
	// entrada de la clasificación ABC.
	TopValuations(ctx context.Context, limit int) ([]ValuationRow, error)

	Turnover(ctx context.Context) ([]TurnoverRow, error)
	Losses(ctx context.Context) ([]LossRow, error)
	Reconciliation(ctx context.Context) ([]ReconciliationRow, error)

	// ── Métricas del dashboard ───────────────────────────────────────────────
	CriticalCount(ctx context.Context) (int, error)
	OutboundVolume(ctx context.Context) (int64, error)
	// TopOutboundProduct devuelve el producto con más unidades salidas.
	// Sin movimientos de salida devuelve nombre vacío y cero, sin error.
	TopOutboundProduct(ctx context.Context) (name string, quantity int64, err error)
	ValueByCategory(ctx context.Context) ([]CategoryValueRow, error)
	TopStockLevels(ctx context.Context, limit int) ([]StockLevelRow, error)
	DailyMovementSeries(ctx context.Context) ([]DailyMovementRow, error)
}
