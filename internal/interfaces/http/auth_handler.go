package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/auth"
	"garantias/internal/application/dto"
)

// AuthHandler trata login, logout e cadastro de usuários.
type AuthHandler struct {
	uc         *auth.UseCase
	cookieTTL  time.Duration
	secureOnly bool
}

// NewAuthHandler constrói o handler. secureOnly marca o cookie como Secure
// (deixar falso apenas em development, sem TLS).
func NewAuthHandler(uc *auth.UseCase, cookieTTLMinutes int, secureOnly bool) *AuthHandler {
	return &AuthHandler{
		uc:         uc,
		cookieTTL:  time.Duration(cookieTTLMinutes) * time.Minute,
		secureOnly: secureOnly,
	}
}

// Login godoc
// @Summary      Efetuar login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
		Secure:   h.secureOnly,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Encerrar a sessão
// @Tags         auth
// @Success      204  "sessão encerrada"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureOnly,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Register godoc
// @Summary      Cadastrar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Dados do usuário"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me godoc
// @Summary      Dados da sessão atual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id": GetUserID(c),
		"nome":    GetNome(c),
	})
}
