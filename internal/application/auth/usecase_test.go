package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Mantenimiento-api/internal/application/auth"
	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/testutil"
	pkgjwt "github.com/jhoicas/Mantenimiento-api/pkg/jwt"
)

const loginSecret = "secret-para-tests-de-login"

func newAuthUC(t *testing.T, users ...*entity.User) *auth.AuthUseCase {
	t.Helper()
	store := testutil.NewStore()
	for _, u := range users {
		store.Users[u.ID] = u
	}
	return auth.NewAuthUseCase(&testutil.UserRepo{S: store}, auth.JWTConfig{
		Secret: loginSecret, ExpMinutes: 60, Issuer: "test",
	})
}

func seedUser(t *testing.T, email, password, role, status string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	return &entity.User{
		ID: "user-1", Email: email, PasswordHash: string(hash),
		Name: "Ana", Role: role, Status: status,
		CreatedAt: now, UpdatedAt: now,
	}
}

func TestLogin_Exitoso(t *testing.T) {
	uc := newAuthUC(t, seedUser(t, "ana@acme.co", "clave123", entity.RoleSupervisor, "active"))

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@acme.co", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.co", resp.User.Email)
	assert.Equal(t, entity.RoleSupervisor, resp.User.Role)

	// El token emitido incluye usuario y rol
	userID, role, err := pkgjwt.Parse(loginSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.RoleSupervisor, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthUC(t, seedUser(t, "ana@acme.co", "clave123", entity.RoleAdmin, "active"))

	_, err := uc.Login(dto.LoginRequest{Email: "ana@acme.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@acme.co", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc := newAuthUC(t, seedUser(t, "ana@acme.co", "clave123", entity.RoleTechnician, "inactive"))

	_, err := uc.Login(dto.LoginRequest{Email: "ana@acme.co", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
