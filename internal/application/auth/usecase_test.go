package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/auth"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
	pkgjwt "github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrUsernameAlreadyExists
	}
	r.users[u.Username] = u
	return nil
}
func (r *fakeUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.Username] = u; return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

const (
	testSecret = "test-secret-for-auth-usecase"
	testIssuer = "controle-de-estoque-test"
)

func testUser(t *testing.T, username, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "u-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
	}
}

func buildAuthUC(users ...*entity.User) (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo(users...)
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_RetornaTokenConRol(t *testing.T) {
	uc, _ := buildAuthUC(testUser(t, "carla", "secreta1", entity.RoleGerente))

	out, err := uc.Login(dto.LoginRequest{Username: "carla", Password: "secreta1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "carla", out.User.Username)
	assert.Equal(t, entity.RoleGerente, out.User.Role)

	// El token debe llevar los claims del usuario
	userID, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-carla", userID)
	assert.Equal(t, "carla", username)
	assert.Equal(t, entity.RoleGerente, role)
}

func TestLogin_PasswordIncorrecto_RetornaInvalidCredentials(t *testing.T) {
	uc, _ := buildAuthUC(testUser(t, "carla", "secreta1", entity.RoleAdmin))

	_, err := uc.Login(dto.LoginRequest{Username: "carla", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInexistente_RetornaUserNotFound(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "da igual"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo_RetornaForbidden(t *testing.T) {
	u := testUser(t, "carla", "secreta1", entity.RoleAdmin)
	u.Status = "inactive"
	uc, _ := buildAuthUC(u)

	_, err := uc.Login(dto.LoginRequest{Username: "carla", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_AdminCreaUsuario(t *testing.T) {
	uc, repo := buildAuthUC()

	out, err := uc.CreateUser(entity.RoleAdmin, dto.CreateUserRequest{
		Username: "nuevo",
		Password: "secreta1",
		Role:     entity.RoleGerente,
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo", out.Username)
	assert.Equal(t, entity.RoleGerente, out.Role)
	assert.Equal(t, "active", out.Status)

	// El hash persistido nunca es el password en claro
	stored := repo.users["nuevo"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta1")))
}

func TestCreateUser_RolPorDefectoEsVisualizador(t *testing.T) {
	uc, _ := buildAuthUC()

	out, err := uc.CreateUser(entity.RoleAdmin, dto.CreateUserRequest{
		Username: "nuevo",
		Password: "secreta1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVisualizador, out.Role)
}

func TestCreateUser_UsernameDuplicado_Rechazado(t *testing.T) {
	uc, _ := buildAuthUC(testUser(t, "carla", "secreta1", entity.RoleAdmin))

	_, err := uc.CreateUser(entity.RoleAdmin, dto.CreateUserRequest{
		Username: "carla",
		Password: "otraclave",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestCreateUser_NoAdminRechazado(t *testing.T) {
	uc, repo := buildAuthUC()

	for _, role := range []string{entity.RoleGerente, entity.RoleVisualizador, ""} {
		_, err := uc.CreateUser(role, dto.CreateUserRequest{Username: "nuevo", Password: "secreta1"})
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %q no debe poder crear usuarios", role)
	}
	assert.Empty(t, repo.users)
}

func TestCreateUser_Validaciones(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.CreateUser(entity.RoleAdmin, dto.CreateUserRequest{Username: "", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "username vacío")

	_, err = uc.CreateUser(entity.RoleAdmin, dto.CreateUserRequest{Username: "nuevo", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password de menos de 6 caracteres")

	_, err = uc.CreateUser(entity.RoleAdmin, dto.CreateUserRequest{Username: "nuevo", Password: "secreta1", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol desconocido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListUsers
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsers_SoloAdmin(t *testing.T) {
	uc, _ := buildAuthUC(
		testUser(t, "carla", "secreta1", entity.RoleAdmin),
		testUser(t, "bruno", "secreta1", entity.RoleVisualizador),
	)

	out, err := uc.ListUsers(entity.RoleAdmin, 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	_, err = uc.ListUsers(entity.RoleGerente, 20, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
