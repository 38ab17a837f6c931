package repository

import "github.com/jhoicas/Autopartes-api/internal/domain/entity"

// MovementRepository define el puerto del libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	// Create inserta el movimiento y completa movement.ID con la secuencia
	// asignada por la base.
	Create(movement *entity.Movement) error
	// List devuelve movimientos del más reciente al más antiguo.
	// productCode vacío lista todos los productos.
	List(productCode string, limit, offset int) ([]*entity.Movement, error)
}
