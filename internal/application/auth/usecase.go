package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y gestión de usuarios.
// La creación de usuarios verifica el rol del actor aquí, no solo en el
// middleware HTTP: la autorización vive en la operación misma.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Distingue usuario inexistente (ErrUserNotFound) de password incorrecto
// (ErrInvalidCredentials); el handler colapsa ambos en 401.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CreateUser crea un usuario: operación reservada a admin. Hashea password
// con bcrypt y persiste. Devuelve ErrUsernameAlreadyExists si el username ya existe.
func (uc *AuthUseCase) CreateUser(actorRole string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	username := strings.TrimSpace(in.Username)
	if username == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVisualizador
	}
	if !entity.IsValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByUsername(username)
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers lista usuarios: operación reservada a admin. Nunca expone hashes.
func (uc *AuthUseCase) ListUsers(actorRole string, limit, offset int) (*dto.UserListResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	list, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
