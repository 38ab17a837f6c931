package repository

import "github.com/jhoicas/Autopartes-api/internal/domain/entity"

// CategoryCountRow categoría con su número de productos (incluye categorías en cero).
type CategoryCountRow struct {
	CategoryID   int
	CategoryName string
	ProductCount int
}

// CategoryRepository define el puerto para las categorías de referencia.
type CategoryRepository interface {
	// EnsureSeeded inserta las categorías fijas si no existen (idempotente).
	// Se invoca una vez al arrancar el proceso, nunca como efecto de import.
	EnsureSeeded(categories []entity.Category) error
	CountByCategory() ([]CategoryCountRow, error)
}
