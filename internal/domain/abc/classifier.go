// Package abc implementa la clasificación ABC (curva de Pareto) del inventario:
// se ordenan los productos por valoración descendente y se asigna una clase
// según el porcentaje acumulado de valor que cada uno aporta.
package abc

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Clases de la curva ABC.
const (
	ClassA = "A" // acumulado <= 80%
	ClassB = "B" // acumulado <= 95%
	ClassC = "C" // resto
)

var (
	hundred    = decimal.NewFromInt(100)
	thresholdA = decimal.NewFromInt(80)
	thresholdB = decimal.NewFromInt(95)
)

// Item es un producto con su valoración de inventario (stock * costo).
type Item struct {
	Code      string
	Name      string
	Valuation decimal.Decimal
}

// Ranked es un Item clasificado, con su participación individual y acumulada.
type Ranked struct {
	Item
	Rank          int
	PctIndividual decimal.Decimal
	PctCumulative decimal.Decimal
	Class         string
}

// Classify ordena los items por valoración descendente (empates por código
// ascendente, para que el resultado sea determinista) y asigna la clase por
// umbrales inclusivos: A si el acumulado es <= 80, B si <= 95, C en el resto.
// Con entrada vacía devuelve un slice vacío; si la valoración total es cero
// no hay división y todos los items quedan en clase A con porcentajes cero.
func Classify(items []Item) []Ranked {
	if len(items) == 0 {
		return []Ranked{}
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := sorted[i].Valuation.Cmp(sorted[j].Valuation)
		if cmp != 0 {
			return cmp > 0
		}
		return sorted[i].Code < sorted[j].Code
	})

	var total decimal.Decimal
	for _, it := range sorted {
		total = total.Add(it.Valuation)
	}

	ranked := make([]Ranked, 0, len(sorted))
	var cumulative decimal.Decimal
	for i, it := range sorted {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = it.Valuation.Div(total).Mul(hundred)
		}
		cumulative = cumulative.Add(pct)

		class := ClassC
		switch {
		case cumulative.LessThanOrEqual(thresholdA):
			class = ClassA
		case cumulative.LessThanOrEqual(thresholdB):
			class = ClassB
		}

		ranked = append(ranked, Ranked{
			Item:          it,
			Rank:          i + 1,
			PctIndividual: pct.Round(2),
			PctCumulative: cumulative.Round(2),
			Class:         class,
		})
	}
	return ranked
}
