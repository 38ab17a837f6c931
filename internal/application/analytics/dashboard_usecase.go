// Package analytics contiene el caso de uso del Dashboard Estratégico de
// inventario: métricas globales, distribución por categoría, serie temporal
// de movimientos y curva ABC.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain/abc"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

const (
	dashboardTopStock = 5  // productos en el widget de niveles de stock
	dashboardABCTopN  = 10 // productos en la curva ABC del dashboard
)

// DashboardUseCase arma el resumen del dashboard a partir del ReportRepository.
// Todas las consultas son de solo lectura y se lanzan en paralelo.
type DashboardUseCase struct {
	repo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro goroutines independientes:
//  1. métricas escalares (valor total, críticos, volumen de salida, producto estrella)
//  2. distribución (valor por categoría + top de niveles de stock)
//  3. serie diaria de entradas/salidas
//  4. top 10 de valoraciones → clasificación ABC
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type metricsResult struct {
		totalValue decimal.Decimal
		critical   int
		outbound   int64
		star       string
		err        error
	}
	type distributionResult struct {
		byCategory []repository.CategoryValueRow
		topStock   []repository.StockLevelRow
		err        error
	}
	type seriesResult struct {
		rows []repository.DailyMovementRow
		err  error
	}
	type abcResult struct {
		rows []repository.ValuationRow
		err  error
	}

	metricsCh := make(chan metricsResult, 1)
	distCh := make(chan distributionResult, 1)
	seriesCh := make(chan seriesResult, 1)
	abcCh := make(chan abcResult, 1)

	go func() {
		var r metricsResult
		r.totalValue, r.err = uc.repo.TotalValuation(ctx)
		if r.err == nil {
			r.critical, r.err = uc.repo.CriticalCount(ctx)
		}
		if r.err == nil {
			r.outbound, r.err = uc.repo.OutboundVolume(ctx)
		}
		if r.err == nil {
			r.star, _, r.err = uc.repo.TopOutboundProduct(ctx)
		}
		metricsCh <- r
	}()
	go func() {
		var r distributionResult
		r.byCategory, r.err = uc.repo.ValueByCategory(ctx)
		if r.err == nil {
			r.topStock, r.err = uc.repo.TopStockLevels(ctx, dashboardTopStock)
		}
		distCh <- r
	}()
	go func() {
		rows, err := uc.repo.DailyMovementSeries(ctx)
		seriesCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.TopValuations(ctx, dashboardABCTopN)
		abcCh <- abcResult{rows, err}
	}()

	metrics := <-metricsCh
	dist := <-distCh
	series := <-seriesCh
	abcRows := <-abcCh

	if metrics.err != nil {
		return nil, fmt.Errorf("dashboard: métricas: %w", metrics.err)
	}
	if dist.err != nil {
		return nil, fmt.Errorf("dashboard: distribución: %w", dist.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("dashboard: serie temporal: %w", series.err)
	}
	if abcRows.err != nil {
		return nil, fmt.Errorf("dashboard: curva ABC: %w", abcRows.err)
	}

	byCategory := make([]dto.CategoryValueDTO, 0, len(dist.byCategory))
	for _, r := range dist.byCategory {
		byCategory = append(byCategory, dto.CategoryValueDTO{
			CategoryName: r.CategoryName,
			StockValue:   r.StockValue.Round(2),
		})
	}
	topStock := make([]dto.StockLevelDTO, 0, len(dist.topStock))
	for _, r := range dist.topStock {
		topStock = append(topStock, dto.StockLevelDTO{
			Code: r.Code, Name: r.Name, CurrentStock: r.CurrentStock,
		})
	}
	daily := make([]dto.DailyMovementDTO, 0, len(series.rows))
	for _, r := range series.rows {
		daily = append(daily, dto.DailyMovementDTO{
			Day: r.Day, Type: r.Type, TotalQuantity: r.TotalQuantity,
		})
	}

	abcItems := make([]abc.Item, 0, len(abcRows.rows))
	for _, r := range abcRows.rows {
		abcItems = append(abcItems, abc.Item{Code: r.Code, Name: r.Name, Valuation: r.StockValue})
	}
	ranked := abc.Classify(abcItems)
	abcOut := make([]dto.ABCItemDTO, 0, len(ranked))
	for _, r := range ranked {
		abcOut = append(abcOut, dto.ABCItemDTO{
			Rank:          r.Rank,
			Code:          r.Code,
			Name:          r.Name,
			StockValue:    r.Valuation.Round(2),
			PctIndividual: r.PctIndividual,
			PctCumulative: r.PctCumulative,
			Class:         r.Class,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalInventoryValue: metrics.totalValue.Round(2),
		CriticalItems:       metrics.critical,
		OutboundVolume:      metrics.outbound,
		StarProduct:         metrics.star,
		ValueByCategory:     byCategory,
		TopStockLevels:      topStock,
		DailyMovements:      daily,
		ABC:                 abcOut,
	}, nil
}
