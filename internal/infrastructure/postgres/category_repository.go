package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// EnsureSeeded inserta las categorías de referencia si no existen. Idempotente:
// se ejecuta en cada arranque sin duplicar filas.
func (r *CategoryRepo) EnsureSeeded(categories []entity.Category) error {
	for _, c := range categories {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO categories (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name,
		)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}
	return nil
}

// CountByCategory devuelve cada categoría con su número de productos.
// LEFT JOIN: las categorías sin productos aparecen con conteo cero.
func (r *CategoryRepo) CountByCategory() ([]repository.CategoryCountRow, error) {
	query := `
		SELECT c.id, c.name, COUNT(p.code)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryCountRow
	for rows.Next() {
		var row repository.CategoryCountRow
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
