// Package reports contiene los casos de uso de lectura sobre el catálogo y el
// libro de movimientos: conciliación, valoración, giro, pérdidas y curva ABC.
// Todos son funciones deterministas de esos datos y toleran catálogo o libro
// vacíos devolviendo resultados vacíos.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain/abc"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// DefaultABCTopN productos considerados en la clasificación ABC por defecto.
const DefaultABCTopN = 10

const maxABCTopN = 100

// ValuationPDFGenerator puerto de generación del PDF de valoración de inventario.
type ValuationPDFGenerator interface {
	GenerateValuationPDF(ctx context.Context, report *dto.ValuationReportDTO, generatedAt time.Time) ([]byte, error)
}

// UseCase casos de uso de reportes. Solo lectura; delega todas las
// agregaciones en el ReportRepository.
type UseCase struct {
	repo repository.ReportRepository
	pdf  ValuationPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ReportRepository, pdf ValuationPDFGenerator) *UseCase {
	return &UseCase{repo: repo, pdf: pdf}
}

// BelowMinimum productos con stock por debajo del mínimo permitido.
func (uc *UseCase) BelowMinimum(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.BelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductResponse{
			Code: p.Code, Name: p.Name, Description: p.Description, CategoryID: p.CategoryID,
			UnitCost: p.UnitCost, UnitPrice: p.UnitPrice,
			CurrentStock: p.CurrentStock, MinStock: p.MinStock,
			CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		})
	}
	return out, nil
}

// ExcessStock productos con stock por encima de 3 veces el mínimo (política fija).
func (uc *UseCase) ExcessStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ExcessStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductResponse{
			Code: p.Code, Name: p.Name, Description: p.Description, CategoryID: p.CategoryID,
			UnitCost: p.UnitCost, UnitPrice: p.UnitPrice,
			CurrentStock: p.CurrentStock, MinStock: p.MinStock,
			CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		})
	}
	return out, nil
}

// Valuation valoración por producto (stock * costo) más el total global.
func (uc *UseCase) Valuation(ctx context.Context) (*dto.ValuationReportDTO, error) {
	rows, err := uc.repo.Valuation(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ValuationItemDTO, 0, len(rows))
	total := decimal.Zero
	for _, r := range rows {
		items = append(items, dto.ValuationItemDTO{
			Code:         r.Code,
			Name:         r.Name,
			CurrentStock: r.CurrentStock,
			UnitCost:     r.UnitCost,
			StockValue:   r.StockValue.Round(2),
		})
		total = total.Add(r.StockValue)
	}
	return &dto.ValuationReportDTO{Items: items, TotalValue: total.Round(2)}, nil
}

// ValuationPDF genera el reporte de valoración como documento PDF.
func (uc *UseCase) ValuationPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.Valuation(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateValuationPDF(ctx, report, time.Now())
}

// Turnover giro de stock por producto, descendente por unidades salidas.
func (uc *UseCase) Turnover(ctx context.Context) ([]dto.TurnoverItemDTO, error) {
	rows, err := uc.repo.Turnover(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TurnoverItemDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TurnoverItemDTO{
			Code:          r.Code,
			Name:          r.Name,
			MovementCount: r.MovementCount,
			TotalOut:      r.TotalOut,
		})
	}
	return out, nil
}

// Losses pérdidas por producto: unidades perdidas y su impacto financiero.
func (uc *UseCase) Losses(ctx context.Context) ([]dto.LossItemDTO, error) {
	rows, err := uc.repo.Losses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LossItemDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LossItemDTO{
			Code:         r.Code,
			Name:         r.Name,
			LostQuantity: r.LostQuantity,
			UnitCost:     r.UnitCost,
			TotalLoss:    r.TotalLoss.Round(2),
		})
	}
	return out, nil
}

// Reconciliation stock registrado vs implícito en el libro, por producto.
func (uc *UseCase) Reconciliation(ctx context.Context) ([]dto.ReconciliationItemDTO, error) {
	rows, err := uc.repo.Reconciliation(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReconciliationItemDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReconciliationItemDTO{
			Code:          r.Code,
			Name:          r.Name,
			RecordedStock: r.RecordedStock,
			ComputedStock: r.ComputedStock,
			Matches:       int64(r.RecordedStock) == r.ComputedStock,
		})
	}
	return out, nil
}

// CategoryValue valor de inventario agrupado por categoría, descendente.
func (uc *UseCase) CategoryValue(ctx context.Context) ([]dto.CategoryValueDTO, error) {
	rows, err := uc.repo.ValueByCategory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryValueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryValueDTO{
			CategoryName: r.CategoryName,
			StockValue:   r.StockValue.Round(2),
		})
	}
	return out, nil
}

// HistoricalStock stock implícito en el libro para un producto concreto.
// Es función pura del libro: no lee current_stock.
func (uc *UseCase) HistoricalStock(ctx context.Context, code string) (*dto.HistoricalStockDTO, error) {
	computed, err := uc.repo.HistoricalStock(ctx, code)
	if err != nil {
		return nil, err
	}
	return &dto.HistoricalStockDTO{Code: code, ComputedStock: computed}, nil
}

// ABC clasificación ABC del top N de productos por valoración.
// topN fuera de rango cae al valor por defecto (10).
func (uc *UseCase) ABC(ctx context.Context, topN int) (*dto.ABCReportDTO, error) {
	if topN <= 0 || topN > maxABCTopN {
		topN = DefaultABCTopN
	}
	rows, err := uc.repo.TopValuations(ctx, topN)
	if err != nil {
		return nil, err
	}
	items := make([]abc.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, abc.Item{Code: r.Code, Name: r.Name, Valuation: r.StockValue})
	}
	ranked := abc.Classify(items)
	out := make([]dto.ABCItemDTO, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.ABCItemDTO{
			Rank:          r.Rank,
			Code:          r.Code,
			Name:          r.Name,
			StockValue:    r.Valuation.Round(2),
			PctIndividual: r.PctIndividual,
			PctCumulative: r.PctCumulative,
			Class:         r.Class,
		})
	}
	return &dto.ABCReportDTO{TopN: topN, Items: out}, nil
}
