// Package inventory contiene el caso de uso que custodia el invariante del
// libro de movimientos: todo cambio de current_stock produce exactamente un
// movimiento con tipo y cantidad equivalentes al delta.
package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// UpdateStockUseCase es el único escritor de current_stock en todo el sistema.
// Dentro de una transacción: bloquea la fila del producto (SELECT FOR UPDATE),
// calcula el delta contra el valor propuesto y, si no es cero, actualiza el
// stock y registra un movimiento Entrada/Salida por el valor absoluto.
type UpdateStockUseCase struct {
	txRunner TxRunner
}

// NewUpdateStockUseCase construye el caso de uso.
func NewUpdateStockUseCase(txRunner TxRunner) *UpdateStockUseCase {
	return &UpdateStockUseCase{txRunner: txRunner}
}

// StockUpdateInput entrada para actualizar el stock de un producto.
// Reason admite texto libre; vacío se registra como Ajuste para que los
// reportes analíticos sigan siendo consultables.
type StockUpdateInput struct {
	Code     string
	NewStock int
	Reason   string
}

// Execute aplica el cambio de stock de forma atómica y devuelve el resultado.
// Delta cero es un no-op: no se escribe nada y Changed queda en false.
func (uc *UpdateStockUseCase) Execute(ctx context.Context, in StockUpdateInput) (*dto.StockUpdateResponse, error) {
	if in.Code == "" || in.NewStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	reason := in.Reason
	if reason == "" {
		reason = entity.ReasonAjuste
	}

	var out *dto.StockUpdateResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByCodeForUpdate(in.Code)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		delta := in.NewStock - product.CurrentStock
		if delta == 0 {
			out = &dto.StockUpdateResponse{
				Code:          in.Code,
				Changed:       false,
				PreviousStock: product.CurrentStock,
				CurrentStock:  product.CurrentStock,
			}
			return nil
		}

		movType := entity.MovementTypeEntrada
		quantity := delta
		if delta < 0 {
			movType = entity.MovementTypeSalida
			quantity = -delta
		}

		if err := productRepo.UpdateStock(in.Code, in.NewStock); err != nil {
			return err
		}
		mov := &entity.Movement{
			ProductCode: in.Code,
			Type:        movType,
			Quantity:    quantity,
			Reason:      reason,
			CreatedAt:   time.Now(),
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}

		out = &dto.StockUpdateResponse{
			Code:          in.Code,
			Changed:       true,
			PreviousStock: product.CurrentStock,
			CurrentStock:  in.NewStock,
			MovementID:    mov.ID,
			MovementType:  movType,
			Quantity:      quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
