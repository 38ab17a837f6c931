package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y dashboard. Todas las
// agregaciones se resuelven en SQL; las escalares usan COALESCE para devolver
// cero sobre una base vacía.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// HistoricalStock stock implícito en el libro para un producto: suma con signo
// de sus movimientos (Entrada suma, Salida resta). No lee current_stock.
func (r *ReportRepo) HistoricalStock(ctx context.Context, code string) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(CASE WHEN type = $2 THEN quantity ELSE -quantity END), 0)
		FROM movements WHERE product_code = $1`
	var sum int64
	err := r.pool.QueryRow(ctx, query, code, entity.MovementTypeEntrada).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("reports.HistoricalStock: %w", err)
	}
	return sum, nil
}

// BelowMinimum productos cuyo stock actual está por debajo del mínimo.
func (r *ReportRepo) BelowMinimum(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE current_stock < min_stock ORDER BY code`
	return r.queryProducts(ctx, "reports.BelowMinimum", query)
}

// ExcessStock productos con stock por encima de 3 veces su mínimo.
func (r *ReportRepo) ExcessStock(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE current_stock > min_stock * 3 ORDER BY code`
	return r.queryProducts(ctx, "reports.ExcessStock", query)
}

// Valuation valoración por producto (current_stock × unit_cost), descendente por valor.
func (r *ReportRepo) Valuation(ctx context.Context) ([]repository.ValuationRow, error) {
	const query = `
		SELECT code, name, current_stock, unit_cost, current_stock * unit_cost AS stock_value
		FROM products
		ORDER BY stock_value DESC, code`
	return r.queryValuations(ctx, "reports.Valuation", query)
}

// TotalValuation valor total del inventario; cero si no hay productos.
func (r *ReportRepo) TotalValuation(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(current_stock * unit_cost), 0) FROM products`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reports.TotalValuation: %w", err)
	}
	return total, nil
}

// TopValuations los `limit` productos de mayor valoración. Empate se resuelve por código.
func (r *ReportRepo) TopValuations(ctx context.Context, limit int) ([]repository.ValuationRow, error) {
	const query = `
		SELECT code, name, current_stock, unit_cost, current_stock * unit_cost AS stock_value
		FROM products
		ORDER BY stock_value DESC, code
		LIMIT $1`
	return r.queryValuations(ctx, "reports.TopValuations", query, limit)
}

// Turnover giro por producto: número de salidas y unidades salidas, descendente.
// Productos sin salidas no aparecen.
func (r *ReportRepo) Turnover(ctx context.Context) ([]repository.TurnoverRow, error) {
	const query = `
		SELECT p.code, p.name, COUNT(m.id), COALESCE(SUM(m.quantity), 0)
		FROM movements m
		JOIN products p ON p.code = m.product_code
		WHERE m.type = $1
		GROUP BY p.code, p.name
		ORDER BY SUM(m.quantity) DESC, p.code`
	rows, err := r.pool.Query(ctx, query, entity.MovementTypeSalida)
	if err != nil {
		return nil, fmt.Errorf("reports.Turnover: %w", err)
	}
	defer rows.Close()
	var list []repository.TurnoverRow
	for rows.Next() {
		var row repository.TurnoverRow
		if err := rows.Scan(&row.Code, &row.Name, &row.MovementCount, &row.TotalOut); err != nil {
			return nil, fmt.Errorf("reports.Turnover scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Losses pérdidas por producto: unidades con motivo Pérdida y su impacto
// financiero a costo unitario actual. Filtra solo por motivo: una Entrada
// registrada con motivo Pérdida también cuenta.
func (r *ReportRepo) Losses(ctx context.Context) ([]repository.LossRow, error) {
	const query = `
		SELECT p.code, p.name, SUM(m.quantity), p.unit_cost, SUM(m.quantity) * p.unit_cost
		FROM movements m
		JOIN products p ON p.code = m.product_code
		WHERE m.reason = $1
		GROUP BY p.code, p.name, p.unit_cost
		ORDER BY SUM(m.quantity) * p.unit_cost DESC, p.code`
	rows, err := r.pool.Query(ctx, query, entity.ReasonPerdida)
	if err != nil {
		return nil, fmt.Errorf("reports.Losses: %w", err)
	}
	defer rows.Close()
	var list []repository.LossRow
	for rows.Next() {
		var row repository.LossRow
		if err := rows.Scan(&row.Code, &row.Name, &row.LostQuantity, &row.UnitCost, &row.TotalLoss); err != nil {
			return nil, fmt.Errorf("reports.Losses scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Reconciliation stock registrado vs stock implícito en el libro, por producto.
// LEFT JOIN: productos sin movimientos comparan contra cero.
func (r *ReportRepo) Reconciliation(ctx context.Context) ([]repository.ReconciliationRow, error) {
	const query = `
		SELECT p.code, p.name, p.current_stock,
		       COALESCE(SUM(CASE WHEN m.type = $1 THEN m.quantity ELSE -m.quantity END), 0)
		FROM products p
		LEFT JOIN movements m ON m.product_code = p.code
		GROUP BY p.code, p.name, p.current_stock
		ORDER BY p.code`
	rows, err := r.pool.Query(ctx, query, entity.MovementTypeEntrada)
	if err != nil {
		return nil, fmt.Errorf("reports.Reconciliation: %w", err)
	}
	defer rows.Close()
	var list []repository.ReconciliationRow
	for rows.Next() {
		var row repository.ReconciliationRow
		if err := rows.Scan(&row.Code, &row.Name, &row.RecordedStock, &row.ComputedStock); err != nil {
			return nil, fmt.Errorf("reports.Reconciliation scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CriticalCount número de productos bajo su stock mínimo.
func (r *ReportRepo) CriticalCount(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE current_stock < min_stock`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("reports.CriticalCount: %w", err)
	}
	return count, nil
}

// OutboundVolume total de unidades salidas en todo el libro.
func (r *ReportRepo) OutboundVolume(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM movements WHERE type = $1`,
		entity.MovementTypeSalida,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("reports.OutboundVolume: %w", err)
	}
	return total, nil
}

// TopOutboundProduct el producto con más unidades salidas ("producto estrella").
// Sin salidas devuelve cadena vacía y cero, nunca error.
func (r *ReportRepo) TopOutboundProduct(ctx context.Context) (string, int64, error) {
	const query = `
		SELECT p.name, SUM(m.quantity)
		FROM movements m
		JOIN products p ON p.code = m.product_code
		WHERE m.type = $1
		GROUP BY p.name
		ORDER BY SUM(m.quantity) DESC, p.name
		LIMIT 1`
	var name string
	var quantity int64
	err := r.pool.QueryRow(ctx, query, entity.MovementTypeSalida).Scan(&name, &quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, nil
		}
		return "", 0, fmt.Errorf("reports.TopOutboundProduct: %w", err)
	}
	return name, quantity, nil
}

// ValueByCategory valor de inventario agrupado por categoría, descendente.
func (r *ReportRepo) ValueByCategory(ctx context.Context) ([]repository.CategoryValueRow, error) {
	const query = `
		SELECT c.name, COALESCE(SUM(p.current_stock * p.unit_cost), 0) AS stock_value
		FROM categories c
		JOIN products p ON p.category_id = c.id
		GROUP BY c.name
		ORDER BY stock_value DESC, c.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.ValueByCategory: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryValueRow
	for rows.Next() {
		var row repository.CategoryValueRow
		if err := rows.Scan(&row.CategoryName, &row.StockValue); err != nil {
			return nil, fmt.Errorf("reports.ValueByCategory scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TopStockLevels los `limit` productos con más unidades en bodega.
func (r *ReportRepo) TopStockLevels(ctx context.Context, limit int) ([]repository.StockLevelRow, error) {
	const query = `
		SELECT code, name, current_stock
		FROM products
		ORDER BY current_stock DESC, code
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.TopStockLevels: %w", err)
	}
	defer rows.Close()
	var list []repository.StockLevelRow
	for rows.Next() {
		var row repository.StockLevelRow
		if err := rows.Scan(&row.Code, &row.Name, &row.CurrentStock); err != nil {
			return nil, fmt.Errorf("reports.TopStockLevels scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// DailyMovementSeries unidades movidas por día y tipo, cronológico.
func (r *ReportRepo) DailyMovementSeries(ctx context.Context) ([]repository.DailyMovementRow, error) {
	const query = `
		SELECT date_trunc('day', created_at) AS day, type, SUM(quantity)
		FROM movements
		GROUP BY day, type
		ORDER BY day, type`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.DailyMovementSeries: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyMovementRow
	for rows.Next() {
		var row repository.DailyMovementRow
		if err := rows.Scan(&row.Day, &row.Type, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("reports.DailyMovementSeries scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *ReportRepo) queryProducts(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Name, &p.Description, &p.CategoryID, &p.UnitCost,
			&p.UnitPrice, &p.CurrentStock, &p.MinStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ReportRepo) queryValuations(ctx context.Context, op, query string, args ...any) ([]repository.ValuationRow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []repository.ValuationRow
	for rows.Next() {
		var row repository.ValuationRow
		if err := rows.Scan(&row.Code, &row.Name, &row.CurrentStock, &row.UnitCost, &row.StockValue); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
