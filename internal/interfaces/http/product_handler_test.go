package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Autopartes-api/internal/interfaces/http"
)

// memProductRepo repositorio en memoria con la misma semántica que el adaptador
// real: duplicado → ErrDuplicate, no encontrado → (nil, nil).
type memProductRepo struct {
	byCode map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byCode: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	if _, ok := r.byCode[p.Code]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.byCode[p.Code] = &cp
	return nil
}

func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	p, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCodeForUpdate(code string) (*entity.Product, error) {
	return r.GetByCode(code)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byCode[p.Code] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(code string, newStock int) error {
	if p, ok := r.byCode[code]; ok {
		p.CurrentStock = newStock
	}
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	codes := make([]string, 0, len(r.byCode))
	for c := range r.byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	var out []*entity.Product
	for i, c := range codes {
		if i < offset {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, r.byCode[c])
	}
	return out, nil
}

func (r *memProductRepo) Search(term string, limit, offset int) ([]*entity.Product, error) {
	return r.List(limit, offset)
}

func (r *memProductRepo) Delete(code string) error {
	if _, ok := r.byCode[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byCode, code)
	return nil
}

func newTestApp(repo *memProductRepo) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(repo),
	})
	return app
}

func TestCrearProducto_Happy(t *testing.T) {
	app := newTestApp(newMemProductRepo())

	raw, _ := json.Marshal(dto.CreateProductRequest{
		Code: "FR-001", Name: "Pastillas de freno", CategoryID: 3,
		CurrentStock: 10, MinStock: 2,
	})
	req := httptest.NewRequest(fiber.MethodPost, "/api/products", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "FR-001", out.Code)
	assert.Equal(t, 10, out.CurrentStock)
}

func TestCrearProducto_SinCodigoNiNombre(t *testing.T) {
	app := newTestApp(newMemProductRepo())

	raw, _ := json.Marshal(map[string]any{"description": "sin identificar"})
	req := httptest.NewRequest(fiber.MethodPost, "/api/products", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestCrearProducto_CodigoDuplicado(t *testing.T) {
	repo := newMemProductRepo()
	app := newTestApp(repo)

	body := dto.CreateProductRequest{Code: "FR-001", Name: "Pastillas de freno"}
	raw, _ := json.Marshal(body)

	req := httptest.NewRequest(fiber.MethodPost, "/api/products", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPost, "/api/products", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "DUPLICATE", out.Code)
}

// Paginación fuera de rango cae al valor por defecto y al tope.
func TestListarProductos_PaginacionAcotada(t *testing.T) {
	repo := newMemProductRepo()
	repo.byCode["FR-001"] = &entity.Product{Code: "FR-001", Name: "Pastillas de freno"}
	repo.byCode["MO-002"] = &entity.Product{Code: "MO-002", Name: "Bujía"}
	app := newTestApp(repo)

	req := httptest.NewRequest(fiber.MethodGet, "/api/products?limit=-1&offset=-3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 20, out.Page.Limit)
	assert.Equal(t, 0, out.Page.Offset)
	assert.Len(t, out.Items, 2)

	req = httptest.NewRequest(fiber.MethodGet, "/api/products?limit=500", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out = dto.ProductListResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 100, out.Page.Limit, "el límite se acota al tope")
}

func TestObtenerProducto_NoExiste(t *testing.T) {
	app := newTestApp(newMemProductRepo())

	req := httptest.NewRequest(fiber.MethodGet, "/api/products/NO-EXISTE", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEliminarProducto(t *testing.T) {
	repo := newMemProductRepo()
	repo.byCode["FR-001"] = &entity.Product{Code: "FR-001", Name: "Pastillas de freno"}
	app := newTestApp(repo)

	req := httptest.NewRequest(fiber.MethodDelete, "/api/products/FR-001", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodDelete, "/api/products/FR-001", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
