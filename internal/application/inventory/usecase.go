package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario (IN, OUT) de
// forma transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// El invariante products.quantity >= 0 se verifica dentro de la transacción,
// antes de cualquier escritura: una salida que lo violaría no deja rastro.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// MovementInputDTO entrada para registrar un movimiento de inventario.
// ActorRole y Username vienen del token; el rol se verifica aquí, no solo en
// el middleware HTTP.
type MovementInputDTO struct {
	ActorRole   string
	Username    string
	ProductCode string
	Type        string // IN | OUT
	Quantity    int64  // > 0
	Notes       string
}

// RegisterMovement inicia una transacción, bloquea la fila del producto
// (SELECT FOR UPDATE), aplica la lógica según tipo y hace Commit o Rollback.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) error {
	if input.ActorRole != entity.RoleAdmin && input.ActorRole != entity.RoleGerente {
		return domain.ErrForbidden
	}
	if input.Type != entity.MovementTypeIN && input.Type != entity.MovementTypeOUT {
		return domain.ErrInvalidInput
	}
	code := strings.TrimSpace(input.ProductCode)
	if code == "" || input.Username == "" {
		return domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}

	now := time.Now()

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para evitar que dos movimientos
		// concurrentes corrompan la cantidad
		product, err := productRepo.GetByCodeForUpdate(code)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.IsActive() {
			return domain.ErrProductInactive
		}

		newQty := product.Quantity
		if input.Type == entity.MovementTypeIN {
			newQty += input.Quantity
		} else {
			newQty -= input.Quantity
		}
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}

		if err := productRepo.UpdateQuantity(code, newQty); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:          uuid.New().String(),
			ProductCode: code,
			Type:        input.Type,
			Quantity:    input.Quantity,
			Notes:       input.Notes,
			CreatedBy:   input.Username,
			CreatedAt:   now,
		}
		return movRepo.Create(mov)
	})
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
// Usar desde handlers que tengan role y username del token más dto.RegisterMovementRequest.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, role, username string, in dto.RegisterMovementRequest) error {
	input := MovementInputDTO{
		ActorRole:   role,
		Username:    username,
		ProductCode: in.ProductCode,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Notes:       in.Notes,
	}
	return uc.RegisterMovement(ctx, input)
}

// ListMovements devuelve el historial, más reciente primero. Los movimientos
// de productos hoy inactivos siguen siendo registros históricos válidos.
func (uc *RegisterMovementUseCase) ListMovements(productCode string, limit, offset int) (*dto.MovementListResponse, error) {
	var (
		items []repository.MovementHistoryItem
		err   error
	)
	if productCode != "" {
		items, err = uc.movRepo.ListByProduct(productCode, limit, offset)
	} else {
		items, err = uc.movRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m repository.MovementHistoryItem) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductCode: m.ProductCode,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Notes:       m.Notes,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}
