package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/usecase"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.Code] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.products[p.Code]; ok {
		return domain.ErrDuplicate
	}
	r.products[p.Code] = p
	return nil
}
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	return r.products[code], nil
}
func (r *fakeProductRepo) GetByCodeForUpdate(code string) (*entity.Product, error) {
	return r.products[code], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.Code] = p; return nil }
func (r *fakeProductRepo) UpdateQuantity(code string, quantity int64) error {
	r.products[code].Quantity = quantity
	return nil
}
func (r *fakeProductRepo) List(statusFilter string, _, _ int) ([]*entity.Product, error) {
	return r.listFiltered(statusFilter), nil
}
func (r *fakeProductRepo) ListAll(statusFilter string) ([]*entity.Product, error) {
	return r.listFiltered(statusFilter), nil
}
func (r *fakeProductRepo) listFiltered(statusFilter string) []*entity.Product {
	var out []*entity.Product
	for _, p := range r.products {
		if statusFilter == repository.StatusFilterAll || p.Status == statusFilter {
			out = append(out, p)
		}
	}
	return out
}

func kayak(code string, qty, minStock int64, status string) *entity.Product {
	return &entity.Product{
		ID:       "p-" + code,
		Code:     code,
		Name:     "Kayak Simples",
		Color:    "amarelo",
		Category: "kayak",
		Quantity: qty,
		MinStock: minStock,
		Status:   status,
	}
}

func strPtr(s string) *string { return &s }

func TestProductCreate_AdminCreaConCantidadCero(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(entity.RoleAdmin, dto.CreateProductRequest{
		Code:     "KAY-S1",
		Name:     "Kayak Simples",
		Color:    "amarelo",
		Category: "kayak",
		Location: "galpão A",
		MinStock: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "KAY-S1", out.Code)
	assert.Equal(t, int64(0), out.Quantity, "todo producto nace con cantidad cero; el stock entra por movimientos")
	assert.Equal(t, entity.ProductStatusActive, out.Status)
	assert.NotEmpty(t, out.ID)
}

func TestProductCreate_CodigoDuplicado_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(kayak("KAY-S1", 5, 2, entity.ProductStatusActive)))

	_, err := uc.Create(entity.RoleAdmin, dto.CreateProductRequest{Code: "KAY-S1", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_NoAdminRechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	for _, role := range []string{entity.RoleGerente, entity.RoleVisualizador} {
		_, err := uc.Create(role, dto.CreateProductRequest{Code: "KAY-S1", Name: "Kayak"})
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %q no debe poder crear productos", role)
	}
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(entity.RoleAdmin, dto.CreateProductRequest{Code: "  ", Name: "Kayak"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "código vacío")

	_, err = uc.Create(entity.RoleAdmin, dto.CreateProductRequest{Code: "KAY-S1", Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Create(entity.RoleAdmin, dto.CreateProductRequest{Code: "KAY-S1", Name: "Kayak", MinStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "min_stock negativo")
}

func TestProductUpdate_CodigoYCantidadInmutables(t *testing.T) {
	repo := newFakeProductRepo(kayak("KAY-S1", 5, 2, entity.ProductStatusActive))
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Update(entity.RoleAdmin, "KAY-S1", dto.UpdateProductRequest{
		Name:  strPtr("Kayak Simples v2"),
		Color: strPtr("vermelho"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Kayak Simples v2", out.Name)
	assert.Equal(t, "vermelho", out.Color)
	// El código y la cantidad no cambian nunca por esta vía
	assert.Equal(t, "KAY-S1", out.Code)
	assert.Equal(t, int64(5), out.Quantity)
}

func TestProductUpdate_CamposOmitidosNoSeTocan(t *testing.T) {
	repo := newFakeProductRepo(kayak("KAY-S1", 5, 2, entity.ProductStatusActive))
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Update(entity.RoleAdmin, "KAY-S1", dto.UpdateProductRequest{
		Location: strPtr("galpão B"),
	})
	require.NoError(t, err)

	assert.Equal(t, "galpão B", out.Location)
	assert.Equal(t, "Kayak Simples", out.Name, "el nombre no enviado debe conservarse")
	assert.Equal(t, "amarelo", out.Color)
}

func TestProductUpdate_Desactivar(t *testing.T) {
	repo := newFakeProductRepo(kayak("KAY-S1", 5, 2, entity.ProductStatusActive))
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Update(entity.RoleAdmin, "KAY-S1", dto.UpdateProductRequest{
		Status: strPtr(entity.ProductStatusInactive),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusInactive, out.Status)

	_, err = uc.Update(entity.RoleAdmin, "KAY-S1", dto.UpdateProductRequest{
		Status: strPtr("deleted"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado desconocido debe rechazarse")
}

func TestProductUpdate_NoExiste_RetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Update(entity.RoleAdmin, "NO-EXISTE", dto.UpdateProductRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductGetByCode_MarcaCritico(t *testing.T) {
	repo := newFakeProductRepo(
		kayak("KAY-S1", 1, 2, entity.ProductStatusActive),  // 1 < 2 → crítico
		kayak("KAY-D1", 2, 2, entity.ProductStatusActive),  // 2 == 2 → no crítico
		kayak("REM-A1", 0, 2, entity.ProductStatusInactive), // inactivo → nunca crítico
	)
	uc := usecase.NewProductUseCase(repo)

	critical, err := uc.GetByCode("KAY-S1")
	require.NoError(t, err)
	assert.True(t, critical.Critical)

	boundary, err := uc.GetByCode("KAY-D1")
	require.NoError(t, err)
	assert.False(t, boundary.Critical, "cantidad igual al mínimo no es crítica")

	inactive, err := uc.GetByCode("REM-A1")
	require.NoError(t, err)
	assert.False(t, inactive.Critical, "un producto inactivo no cuenta como crítico")
}

func TestProductList_FiltroDeEstado(t *testing.T) {
	repo := newFakeProductRepo(
		kayak("KAY-S1", 5, 2, entity.ProductStatusActive),
		kayak("KAY-D1", 3, 1, entity.ProductStatusInactive),
	)
	uc := usecase.NewProductUseCase(repo)

	active, err := uc.List(repository.StatusFilterActive, 20, 0)
	require.NoError(t, err)
	assert.Len(t, active.Items, 1)

	all, err := uc.List(repository.StatusFilterAll, 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	// Filtro vacío equivale a active
	def, err := uc.List("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, def.Items, 1)

	_, err = uc.List("archived", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
