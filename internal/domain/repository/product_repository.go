package repository

import "github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"

// Filtros de estado para listados de productos.
const (
	StatusFilterActive   = "active"
	StatusFilterInactive = "inactive"
	StatusFilterAll      = "all"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetByCodeForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene efecto
	// dentro de una transacción (TxRunner).
	GetByCodeForUpdate(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity actualiza solo la cantidad (usada por el motor de movimientos).
	UpdateQuantity(code string, quantity int64) error
	List(statusFilter string, limit, offset int) ([]*entity.Product, error)
	// ListAll devuelve el listado completo sin paginar (exportaciones).
	ListAll(statusFilter string) ([]*entity.Product, error)
}
