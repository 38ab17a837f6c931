package repository

import "github.com/jhoicas/Autopartes-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateStock es de uso exclusivo del caso de uso de actualización de stock:
// ningún otro código puede tocar current_stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByCode(code string) (*entity.Product, error)
	// GetByCodeForUpdate bloquea la fila del producto (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetByCodeForUpdate(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(code string, newStock int) error
	List(limit, offset int) ([]*entity.Product, error)
	// Search filtra por nombre o código con patrón parametrizado (nunca
	// interpolado en el SQL).
	Search(term string, limit, offset int) ([]*entity.Product, error)
	Delete(code string) error
}
