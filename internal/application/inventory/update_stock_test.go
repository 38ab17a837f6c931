package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Autopartes-api/internal/application/inventory"
	"github.com/jhoicas/Autopartes-api/internal/domain"
	"github.com/jhoicas/Autopartes-api/internal/domain/entity"
	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	stockErr error // error forzado en UpdateStock
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := f.products[p.Code]; ok {
		return domain.ErrDuplicate
	}
	f.products[p.Code] = p
	return nil
}

func (f *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	p, ok := f.products[code]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) GetByCodeForUpdate(code string) (*entity.Product, error) {
	return f.GetByCode(code)
}

func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (f *fakeProductRepo) UpdateStock(code string, newStock int) error {
	if f.stockErr != nil {
		return f.stockErr
	}
	p, ok := f.products[code]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = newStock
	return nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Search(term string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(code string) error { return nil }

type fakeMovementRepo struct {
	movements []*entity.Movement
	createErr error
	nextID    int64
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	m.ID = f.nextID
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) List(productCode string, limit, offset int) ([]*entity.Movement, error) {
	return f.movements, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin BD).
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	return fn(f.products, f.movements)
}

func newFixture(initialStock int) (*inventory.UpdateStockUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"FLT-001": {Code: "FLT-001", Name: "Filtro de aceite", CurrentStock: initialStock, MinStock: 2},
	}}
	movements := &fakeMovementRepo{}
	uc := inventory.NewUpdateStockUseCase(&fakeTxRunner{products: products, movements: movements})
	return uc, products, movements
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Subir de 5 a 8 con motivo Ajuste debe producir exactamente un movimiento
// Entrada por 3 unidades; bajar luego de 8 a 2 con motivo Pérdida, una Salida
// por 6. El libro reconstruye el stock final a partir del inicial.
func TestUpdateStock_EntradaYSalidaRegistranMovimientos(t *testing.T) {
	uc, products, movements := newFixture(5)
	ctx := context.Background()

	out, err := uc.Execute(ctx, inventory.StockUpdateInput{Code: "FLT-001", NewStock: 8, Reason: entity.ReasonAjuste})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, entity.MovementTypeEntrada, out.MovementType)
	assert.Equal(t, 3, out.Quantity)
	assert.Equal(t, 5, out.PreviousStock)
	assert.Equal(t, 8, out.CurrentStock)

	out, err = uc.Execute(ctx, inventory.StockUpdateInput{Code: "FLT-001", NewStock: 2, Reason: entity.ReasonPerdida})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeSalida, out.MovementType)
	assert.Equal(t, 6, out.Quantity)

	require.Len(t, movements.movements, 2)
	assert.Equal(t, entity.ReasonPerdida, movements.movements[1].Reason)
	assert.Equal(t, 2, products.products["FLT-001"].CurrentStock)
}

// Propiedad del invariante: tras una secuencia arbitraria de cambios, el stock
// inicial más la suma con signo de los movimientos reconstruye el stock final.
func TestUpdateStock_ElLibroReconstruyeElStockFinal(t *testing.T) {
	uc, products, movements := newFixture(10)
	ctx := context.Background()

	sequence := []int{14, 14, 3, 20, 0, 7}
	for _, target := range sequence {
		_, err := uc.Execute(ctx, inventory.StockUpdateInput{Code: "FLT-001", NewStock: target})
		require.NoError(t, err)
	}

	signedSum := 0
	for _, m := range movements.movements {
		signedSum += m.SignedQuantity()
	}
	final := products.products["FLT-001"].CurrentStock
	assert.Equal(t, final, 10+signedSum,
		"stock inicial + suma con signo del libro debe igualar el stock final")
	assert.Equal(t, 7, final)
}

// Delta cero: no se escribe ningún movimiento y el resultado lo reporta.
func TestUpdateStock_SinCambioNoRegistraMovimiento(t *testing.T) {
	uc, _, movements := newFixture(5)

	out, err := uc.Execute(context.Background(), inventory.StockUpdateInput{Code: "FLT-001", NewStock: 5})
	require.NoError(t, err)
	assert.False(t, out.Changed, "nuevo valor igual al actual debe reportarse como sin cambio")
	assert.Empty(t, movements.movements)
}

// Motivo vacío se normaliza a Ajuste para mantener el vocabulario analítico.
func TestUpdateStock_MotivoVacioSeVuelveAjuste(t *testing.T) {
	uc, _, movements := newFixture(5)

	_, err := uc.Execute(context.Background(), inventory.StockUpdateInput{Code: "FLT-001", NewStock: 9})
	require.NoError(t, err)
	require.Len(t, movements.movements, 1)
	assert.Equal(t, entity.ReasonAjuste, movements.movements[0].Reason)
}

func TestUpdateStock_ProductoInexistente(t *testing.T) {
	uc, _, _ := newFixture(5)

	_, err := uc.Execute(context.Background(), inventory.StockUpdateInput{Code: "NO-EXISTE", NewStock: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStock_StockNegativoEsInvalido(t *testing.T) {
	uc, _, _ := newFixture(5)

	_, err := uc.Execute(context.Background(), inventory.StockUpdateInput{Code: "FLT-001", NewStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si el alta del movimiento falla, el caso de uso propaga el error para que la
// transacción haga rollback (ningún resultado parcial visible).
func TestUpdateStock_ErrorEnMovimientoPropagaParaRollback(t *testing.T) {
	uc, _, movements := newFixture(5)
	movements.createErr = errors.New("falla de inserción")

	out, err := uc.Execute(context.Background(), inventory.StockUpdateInput{Code: "FLT-001", NewStock: 8})
	assert.Error(t, err)
	assert.Nil(t, out)
}
