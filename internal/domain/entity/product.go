package entity

import "time"

// Estados de ciclo de vida de un producto. Los inactivos se conservan por
// historial pero quedan fuera de movimientos y del dashboard.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un modelo de caiaque en el inventario.
// Code es único e inmutable después de la creación; Quantity solo se modifica
// a través de movimientos y nunca puede ser negativa.
type Product struct {
	ID        string
	Code      string // código único del modelo
	Name      string
	Color     string
	Category  string
	Location  string
	Quantity  int64 // unidades físicas, >= 0
	MinStock  int64 // umbral mínimo configurado, >= 0
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si el producto está activo.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// IsCritical indica si la cantidad cayó por debajo del mínimo configurado.
// La condición es estricta: quantity == min_stock NO es crítico.
func (p *Product) IsCritical() bool {
	return p.Quantity < p.MinStock
}
