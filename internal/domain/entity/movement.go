package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntrada = "Entrada" // incrementa el stock
	MovementTypeSalida  = "Salida"  // decrementa el stock
)

// Motivos del vocabulario controlado. El campo acepta texto libre, pero los
// reportes analíticos (pérdidas en particular) filtran por estos valores.
const (
	ReasonVenta      = "Venta"
	ReasonDevolucion = "Devolución"
	ReasonPerdida    = "Pérdida"
	ReasonAjuste     = "Ajuste"
)

// Movement es una entrada del libro de movimientos (append-only).
// Se crea exactamente una por cada cambio de CurrentStock; nunca se
// actualiza ni se borra. ID es asignado por la base (secuencia monótona).
// ProductCode no cascadea al borrar el producto: el historial huérfano se
// conserva como rastro de auditoría.
type Movement struct {
	ID          int64
	ProductCode string
	Type        string // Entrada | Salida
	Quantity    int    // siempre positivo; el signo lo da Type
	Reason      string
	CreatedAt   time.Time
}

// SignedQuantity devuelve la cantidad con signo según el tipo de movimiento.
func (m *Movement) SignedQuantity() int {
	if m.Type == MovementTypeSalida {
		return -m.Quantity
	}
	return m.Quantity
}
