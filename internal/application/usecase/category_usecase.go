package usecase

import (
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// CategoryUseCase lectura de las categorías de referencia con su conteo de
// productos. Las categorías se siembran al arranque y no tienen más ciclo de vida.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías con cuántos productos tiene cada una
// (las categorías sin productos aparecen con cero).
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	rows, err := uc.repo.CountByCategory()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryResponse{
			ID:           r.CategoryID,
			Name:         r.CategoryName,
			ProductCount: r.ProductCount,
		})
	}
	return out, nil
}
