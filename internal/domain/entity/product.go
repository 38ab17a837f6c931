package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una autoparte del catálogo.
// Code es la llave natural asignada por el operador (inmutable una vez creada).
// CurrentStock es el snapshot autoritativo; cada cambio debe pasar por el caso de
// uso de actualización de stock, que registra el movimiento correspondiente.
// CategoryID no se valida contra Categories: referencias colgantes se toleran.
type Product struct {
	Code         string
	Name         string
	Description  string
	CategoryID   int
	UnitCost     decimal.Decimal // costo unitario
	UnitPrice    decimal.Decimal // precio de venta
	CurrentStock int
	MinStock     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelowMinimum indica si el stock actual está por debajo del mínimo permitido.
func (p *Product) BelowMinimum() bool {
	return p.CurrentStock < p.MinStock
}

// ExcessStock indica si el stock supera 3 veces el mínimo (política fija del negocio).
func (p *Product) ExcessStock() bool {
	return p.CurrentStock > 3*p.MinStock
}

// StockValue devuelve la valoración del inventario del producto (stock * costo).
func (p *Product) StockValue() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}
