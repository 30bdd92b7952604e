package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{
		Secret:     "test-secret-key",
		ExpMinutes: 60,
		Issuer:     "bodega-api-test",
	}
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, isAdmin bool) *entity.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(u))
	return u
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "admin123", true)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "admin123", true)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecto"})
	// Mismo error que usuario desconocido: no se distingue la causa.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_TokenValido(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "admin123", true)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	user, err := uc.Authenticate(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, user.IsAdmin)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Authenticate("no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_UsuarioEliminado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "temporal", "pass123", false)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "temporal", Password: "pass123"})
	require.NoError(t, err)

	// El token sigue firmado y sin expirar, pero el usuario ya no existe.
	delete(repo.byUsername, "temporal")

	_, err = uc.Authenticate(out.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRequireAdmin(t *testing.T) {
	assert.ErrorIs(t, auth.RequireAdmin(nil), domain.ErrUnauthorized)
	assert.ErrorIs(t, auth.RequireAdmin(&entity.User{Username: "normal"}), domain.ErrForbidden)
	assert.NoError(t, auth.RequireAdmin(&entity.User{Username: "admin", IsAdmin: true}))
}

func TestHashPassword_VerificableConBcrypt(t *testing.T) {
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	repo := newFakeUserRepo()
	require.NoError(t, repo.Create(&entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		PasswordHash: hash,
		IsAdmin:      true,
	}))
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	assert.NoError(t, err)
}
