package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad se maneja
// exclusivamente vía movimientos; aquí nunca se toca. Las escrituras exigen
// rol admin en la operación misma, independiente del middleware HTTP.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto con cantidad 0 y estado activo.
// Devuelve ErrDuplicate si el código ya existe.
func (uc *ProductUseCase) Create(actorRole string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	code := strings.TrimSpace(in.Code)
	if code == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      in.Name,
		Color:     in.Color,
		Category:  in.Category,
		Location:  in.Location,
		Quantity:  0,
		MinStock:  in.MinStock,
		Status:    entity.ProductStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByCode obtiene un producto por código.
func (uc *ProductUseCase) GetByCode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos mutables de un producto. Code y Quantity son
// intocables: el código es inmutable y la cantidad solo cambia por movimientos.
// Desactivar = Status "inactive"; no hay borrado físico.
func (uc *ProductUseCase) Update(actorRole, code string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.Status != nil {
		if *in.Status != entity.ProductStatusActive && *in.Status != entity.ProductStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtro de estado (active | inactive | all) y paginación.
func (uc *ProductUseCase) List(statusFilter string, limit, offset int) (*dto.ProductListResponse, error) {
	switch statusFilter {
	case "":
		statusFilter = repository.StatusFilterActive
	case repository.StatusFilterActive, repository.StatusFilterInactive, repository.StatusFilterAll:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(statusFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Color:     p.Color,
		Category:  p.Category,
		Location:  p.Location,
		Quantity:  p.Quantity,
		MinStock:  p.MinStock,
		Status:    p.Status,
		Critical:  p.IsActive() && p.IsCritical(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
