package abc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Autopartes-api/internal/domain/abc"
)

func item(code string, valuation int64) abc.Item {
	return abc.Item{Code: code, Name: "Producto " + code, Valuation: decimal.NewFromInt(valuation)}
}

// Escenario de referencia: valoraciones 50/30/20 sobre un total de 100.
// Acumulados 50, 80 y 100 → clases A, A y C (el umbral 80 es inclusivo).
func TestClassify_EscenarioCincuentaTreintaVeinte(t *testing.T) {
	out := abc.Classify([]abc.Item{item("X", 50), item("Y", 30), item("Z", 20)})
	require.Len(t, out, 3)

	assert.Equal(t, "X", out[0].Code)
	assert.Equal(t, abc.ClassA, out[0].Class, "acumulado 50 debe ser clase A")
	assert.Equal(t, abc.ClassA, out[1].Class, "acumulado 80 cae dentro del umbral inclusivo de A")
	assert.Equal(t, abc.ClassC, out[2].Class, "acumulado 100 supera el umbral de B (95)")
}

func TestClassify_EntradaVaciaDevuelveVacio(t *testing.T) {
	out := abc.Classify(nil)
	require.NotNil(t, out, "la clasificación de entrada vacía debe ser un slice vacío, no nil")
	assert.Empty(t, out)
}

// El acumulado del último item debe cerrar en 100 (dentro de tolerancia de redondeo)
// y las clases nunca deben "mejorar" al bajar en el ranking (A→B→C monotónico).
func TestClassify_AcumuladoCierraEnCienYClasesMonotonicas(t *testing.T) {
	out := abc.Classify([]abc.Item{
		item("P1", 400), item("P2", 250), item("P3", 150),
		item("P4", 100), item("P5", 60), item("P6", 40),
	})
	require.Len(t, out, 6)

	last := out[len(out)-1]
	diff := last.PctCumulative.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.05)),
		"el acumulado final debe quedar en ~100, fue %s", last.PctCumulative)

	rank := map[string]int{abc.ClassA: 0, abc.ClassB: 1, abc.ClassC: 2}
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, rank[out[i].Class], rank[out[i-1].Class],
			"la clase no puede mejorar al descender en el ranking (posición %d)", i)
	}
}

// Empates de valoración se resuelven por código ascendente: mismo input en
// distinto orden produce siempre el mismo ranking.
func TestClassify_EmpatesPorCodigoAscendente(t *testing.T) {
	a := abc.Classify([]abc.Item{item("B2", 100), item("A1", 100), item("C3", 100)})
	b := abc.Classify([]abc.Item{item("C3", 100), item("A1", 100), item("B2", 100)})

	require.Len(t, a, 3)
	assert.Equal(t, "A1", a[0].Code)
	assert.Equal(t, "B2", a[1].Code)
	assert.Equal(t, "C3", a[2].Code)
	for i := range a {
		assert.Equal(t, a[i].Code, b[i].Code, "el orden debe ser determinista ante empates")
		assert.Equal(t, a[i].Class, b[i].Class)
	}
}

// Un único producto concentra el 100% del valor: acumulado 100 → clase C por la
// regla documentada (<=80 A, <=95 B, resto C).
func TestClassify_UnSoloItem(t *testing.T) {
	out := abc.Classify([]abc.Item{item("U1", 500)})
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Rank)
	assert.True(t, out[0].PctIndividual.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, abc.ClassC, out[0].Class)
}

// Valoración total cero: sin división por cero, porcentajes en cero y clase A.
func TestClassify_ValoracionTotalCero(t *testing.T) {
	out := abc.Classify([]abc.Item{item("Z1", 0), item("Z2", 0)})
	require.Len(t, out, 2)
	for _, r := range out {
		assert.True(t, r.PctCumulative.IsZero())
		assert.Equal(t, abc.ClassA, r.Class)
	}
}
