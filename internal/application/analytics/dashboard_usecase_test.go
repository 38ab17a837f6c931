package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Autopartes-api/internal/application/analytics"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// stubReportRepo devuelve datos fijos; err fuerza la falla de cualquier consulta.
type stubReportRepo struct {
	totalValue decimal.Decimal
	critical   int
	outbound   int64
	star       string
	byCategory []repository.CategoryValueRow
	topStock   []repository.StockLevelRow
	daily      []repository.DailyMovementRow
	topValues  []repository.ValuationRow
	err        error
}

func (s *stubReportRepo) HistoricalStock(context.Context, string) (int64, error) { return 0, s.err }
func (s *stubReportRepo) BelowMinimum(context.Context) ([]*entity.Product, error) {
	return nil, s.err
}
func (s *stubReportRepo) ExcessStock(context.Context) ([]*entity.Product, error) { return nil, s.err }
func (s *stubReportRepo) Valuation(context.Context) ([]repository.ValuationRow, error) {
	return nil, s.err
}
func (s *stubReportRepo) TotalValuation(context.Context) (decimal.Decimal, error) {
	return s.totalValue, s.err
}
func (s *stubReportRepo) TopValuations(_ context.Context, limit int) ([]repository.ValuationRow, error) {
	rows := s.topValues
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, s.err
}
func (s *stubReportRepo) Turnover(context.Context) ([]repository.TurnoverRow, error) {
	return nil, s.err
}
func (s *stubReportRepo) Losses(context.Context) ([]repository.LossRow, error) { return nil, s.err }
func (s *stubReportRepo) Reconciliation(context.Context) ([]repository.ReconciliationRow, error) {
	return nil, s.err
}
func (s *stubReportRepo) CriticalCount(context.Context) (int, error) { return s.critical, s.err }
func (s *stubReportRepo) OutboundVolume(context.Context) (int64, error) {
	return s.outbound, s.err
}
func (s *stubReportRepo) TopOutboundProduct(context.Context) (string, int64, error) {
	return s.star, s.outbound, s.err
}
func (s *stubReportRepo) ValueByCategory(context.Context) ([]repository.CategoryValueRow, error) {
	return s.byCategory, s.err
}
func (s *stubReportRepo) TopStockLevels(context.Context, int) ([]repository.StockLevelRow, error) {
	return s.topStock, s.err
}
func (s *stubReportRepo) DailyMovementSeries(context.Context) ([]repository.DailyMovementRow, error) {
	return s.daily, s.err
}

func TestGetSummary_BaseVacia(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubReportRepo{totalValue: decimal.Zero})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalInventoryValue.IsZero())
	assert.Zero(t, out.CriticalItems)
	assert.Zero(t, out.OutboundVolume)
	assert.Empty(t, out.StarProduct, "sin salidas no hay producto estrella")
	assert.Empty(t, out.ValueByCategory)
	assert.Empty(t, out.TopStockLevels)
	assert.Empty(t, out.DailyMovements)
	assert.Empty(t, out.ABC)
}

func TestGetSummary_ResumenCompleto(t *testing.T) {
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	repo := &stubReportRepo{
		totalValue: decimal.NewFromInt(1550),
		critical:   2,
		outbound:   37,
		star:       "Pastillas de freno",
		byCategory: []repository.CategoryValueRow{
			{CategoryName: "Frenos", StockValue: decimal.NewFromInt(900)},
			{CategoryName: "Motor", StockValue: decimal.NewFromInt(650)},
		},
		topStock: []repository.StockLevelRow{
			{Code: "FR-001", Name: "Pastillas de freno", CurrentStock: 40},
		},
		daily: []repository.DailyMovementRow{
			{Day: day, Type: entity.MovementTypeSalida, TotalQuantity: 12},
		},
		topValues: []repository.ValuationRow{
			{Code: "FR-001", Name: "Pastillas de freno", StockValue: decimal.NewFromInt(900)},
			{Code: "MO-002", Name: "Filtro de aceite", StockValue: decimal.NewFromInt(650)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalInventoryValue.Equal(decimal.NewFromInt(1550)))
	assert.Equal(t, 2, out.CriticalItems)
	assert.Equal(t, int64(37), out.OutboundVolume)
	assert.Equal(t, "Pastillas de freno", out.StarProduct)
	require.Len(t, out.ValueByCategory, 2)
	assert.Equal(t, "Frenos", out.ValueByCategory[0].CategoryName)
	require.Len(t, out.TopStockLevels, 1)
	require.Len(t, out.DailyMovements, 1)
	assert.Equal(t, int64(12), out.DailyMovements[0].TotalQuantity)
	require.Len(t, out.ABC, 2)
	assert.Equal(t, 1, out.ABC[0].Rank)
	assert.Equal(t, "A", out.ABC[0].Class)
}

func TestGetSummary_PropagaErrores(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := analytics.NewDashboardUseCase(&stubReportRepo{err: boom})

	out, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}
