package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "garantias/internal/interfaces/http"
	pkgjwt "garantias/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testNome      = "Usuário de Teste"
	testIssuer    = "garantias-test"
	testExpMin    = 60
)

// buildTestApp monta uma aplicação Fiber mínima com o middleware de sessão e
// um handler que devolve 200 com os locals carregados.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.SessionMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id": apphttp.GetUserID(c),
				"nome":    apphttp.GetNome(c),
			})
		},
	)
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testNome, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func TestSessionMiddleware_CookieDeSessaoValido(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: validToken(t)})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, testUserID, out["user_id"])
	assert.Equal(t, testNome, out["nome"])
}

func TestSessionMiddleware_BearerComoAlternativa(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionMiddleware_SemCredencial(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: "nao-e-um-jwt"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_AssinaturaErrada(t *testing.T) {
	app := buildTestApp()

	tok, err := pkgjwt.Generate("outro-secret", testUserID, testNome, testIssuer, testExpMin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testNome, testIssuer, -5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
