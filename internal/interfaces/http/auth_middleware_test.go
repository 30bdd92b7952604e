package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	ihttp "github.com/jhoicas/Bodega-api/internal/interfaces/http"
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

type testEnv struct {
	app  *fiber.App
	repo *fakeUserRepo
	uc   *auth.AuthUseCase
}

// newTestEnv monta una app mínima: login público y una ruta protegida
// por autenticación + admin, igual que las rutas de catálogo y órdenes.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key",
		ExpMinutes: 60,
		Issuer:     "bodega-api-test",
	})

	app := fiber.New()
	app.Post("/auth/login", ihttp.NewAuthHandler(uc).Login)
	app.Get("/protegida", ihttp.AuthMiddleware(uc), ihttp.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": ihttp.GetPrincipal(c).Username})
	})

	return &testEnv{app: app, repo: repo, uc: uc}
}

func (e *testEnv) seedUser(t *testing.T, username, password string, isAdmin bool) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, e.repo.Create(&entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}))
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.AccessToken)
	require.Equal(t, "bearer", out.TokenType)
	return out.AccessToken
}

func TestLogin_FormEncoded(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin", "admin123", true)

	token := env.login(t, "admin", "admin123")
	assert.NotEmpty(t, token)
}

func TestLogin_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin", "admin123", true)

	body := `{"username":"admin","password":"admin123"}`
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin", "admin123", true)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"password incorrecto", "admin", "malo"},
		{"usuario desconocido", "nadie", "admin123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{"username": {tc.username}, "password": {tc.password}}
			req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			resp, err := env.app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var out dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, "BAD_CREDENTIALS", out.Code)
		})
	}
}

func TestLogin_CamposFaltantes(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{"username": {"admin"}}
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRutaProtegida_SinToken(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/protegida", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRutaProtegida_HeaderMalformado(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Basic loquesea")

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRutaProtegida_TokenInvalido(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-jwt")

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRutaProtegida_UsuarioEliminado(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "temporal", "pass123", true)
	token := env.login(t, "temporal", "pass123")

	delete(env.repo.byUsername, "temporal")

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRutaProtegida_NoAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "normal", "pass123", false)
	token := env.login(t, "normal", "pass123")

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "FORBIDDEN", out.Code)
}

func TestRutaProtegida_Admin(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin", "admin123", true)
	token := env.login(t, "admin", "admin123")

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"username":"admin"`)
}
