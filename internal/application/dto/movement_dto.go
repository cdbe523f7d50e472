package dto

import "time"

// RegisterMovementRequest entrada HTTP para registrar un movimiento.
type RegisterMovementRequest struct {
	ProductCode string `json:"product_code" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Notes       string `json:"notes" validate:"omitempty,max=500"`
}

// MovementResponse fila del historial de movimientos.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse historial paginado, más reciente primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
