package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/pkg/jwt"
)

// Nome do cookie de sessão emitido pelo login.
const SessionCookie = "sessao"

// Chaves de Locals para UserID e Nome no Fiber.
const (
	LocalUserID = "user_id"
	LocalNome   = "nome"
)

// SessionMiddleware valida a sessão e coloca UserID e Nome em c.Locals.
// Aceita o cookie httpOnly emitido no login ou, como alternativa, um
// Bearer token no header Authorization (útil para clientes de API).
func SessionMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = strings.TrimSpace(parts[1])
			}
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sessão não encontrada"})
		}
		userID, nome, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "sessão inválida ou expirada"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalNome, nome)
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (após o middleware de sessão).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetNome devolve o nome do usuário do contexto.
func GetNome(c *fiber.Ctx) string {
	v := c.Locals(LocalNome)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
