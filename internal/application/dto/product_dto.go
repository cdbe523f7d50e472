package dto

import "time"

// CreateProductRequest entrada para crear un producto. La cantidad inicia en 0
// y solo cambia vía movimientos.
type CreateProductRequest struct {
	Code     string `json:"code" validate:"required,min=1,max=50"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Color    string `json:"color" validate:"omitempty,max=50"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Location string `json:"location" validate:"omitempty,max=100"`
	MinStock int64  `json:"min_stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto. El código es
// inmutable y la cantidad no se toca aquí.
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Category *string `json:"category"`
	Location *string `json:"location"`
	MinStock *int64  `json:"min_stock"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Category  string    `json:"category"`
	Location  string    `json:"location"`
	Quantity  int64     `json:"quantity"`
	MinStock  int64     `json:"min_stock"`
	Status    string    `json:"status"`
	Critical  bool      `json:"critical"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
