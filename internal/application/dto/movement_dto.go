package dto

import "time"

// UpdateStockRequest cambia el stock de un producto con un motivo.
// NewStock es puntero para distinguir "cero" de "ausente".
type UpdateStockRequest struct {
	NewStock *int   `json:"new_stock" validate:"required,min=0"`
	Reason   string `json:"reason"`
}

// StockUpdateResponse resultado de la actualización de stock.
// Si Changed es false el valor propuesto era igual al actual y no se
// registró ningún movimiento.
type StockUpdateResponse struct {
	Code          string `json:"code"`
	Changed       bool   `json:"changed"`
	PreviousStock int    `json:"previous_stock"`
	CurrentStock  int    `json:"current_stock"`
	MovementID    int64  `json:"movement_id,omitempty"`
	MovementType  string `json:"movement_type,omitempty"` // Entrada | Salida
	Quantity      int    `json:"quantity,omitempty"`
}

// MovementResponse entrada del libro de movimientos.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductCode string    `json:"product_code"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
