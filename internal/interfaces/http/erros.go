package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/internal/domain"
)

// respondError traduz os erros de domínio em respostas HTTP consistentes.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrSintaxe):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_JSON", Message: err.Error()})
	case errors.Is(err, domain.ErrValidacao):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BACKUP", Message: err.Error()})
	case errors.Is(err, domain.ErrConfirmacaoPendente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RESTORE_PENDING", Message: err.Error()})
	case errors.Is(err, domain.ErrRestauracao):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RESTORE_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// parseID lê o parâmetro de rota :id como inteiro positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return int64(id), nil
}

// pageFromQuery monta a paginação a partir da query string.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
}
