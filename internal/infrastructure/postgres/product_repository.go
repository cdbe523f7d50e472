package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, name, color, category, location, quantity, min_stock, status, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Quantity inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, code, name, color, category, location, quantity, min_stock, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Color, product.Category,
		product.Location, product.Quantity, product.MinStock, product.Status,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE code = $1`, code)
}

// GetByCodeForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *ProductRepo) GetByCodeForUpdate(code string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE code = $1 FOR UPDATE`, code)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Code, &p.Name, &p.Color, &p.Category, &p.Location,
		&p.Quantity, &p.MinStock, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los campos mutables de un producto. Nunca toca code ni quantity.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, color = $3, category = $4, location = $5, min_stock = $6, status = $7, updated_at = $8
		WHERE code = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.Code, product.Name, product.Color, product.Category,
		product.Location, product.MinStock, product.Status, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad (usada por el motor de movimientos,
// dentro de la transacción que ya bloqueó la fila).
func (r *ProductRepo) UpdateQuantity(code string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE code = $1`,
		code, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List lista productos con filtro de estado y paginación.
func (r *ProductRepo) List(statusFilter string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if statusFilter != repository.StatusFilterAll {
		query += ` WHERE status = $1 ORDER BY code LIMIT $2 OFFSET $3`
		args = append(args, statusFilter, limit, offset)
	} else {
		query += ` ORDER BY code LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	return r.queryMany(query, args...)
}

// ListAll devuelve el listado completo sin paginar (exportaciones).
func (r *ProductRepo) ListAll(statusFilter string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if statusFilter != repository.StatusFilterAll {
		query += ` WHERE status = $1`
		args = append(args, statusFilter)
	}
	query += ` ORDER BY code`
	return r.queryMany(query, args...)
}

func (r *ProductRepo) queryMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Color, &p.Category, &p.Location,
			&p.Quantity, &p.MinStock, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
