package http

import (
	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
)

// StatusHandler trata os status personalizados (protegido).
type StatusHandler struct {
	uc *usecase.StatusUseCase
}

func NewStatusHandler(uc *usecase.StatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// Create godoc
// @Summary      Criar status personalizado
// @Tags         status
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StatusRequest  true  "Nome, cor e entidades"
// @Success      201   {object}  dto.StatusResponse
// @Router       /api/status [post]
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar status personalizados
// @Tags         status
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatusListResponse
// @Router       /api/status [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar status personalizado
// @Tags         status
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do status"
// @Param        body  body  dto.StatusRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.StatusResponse
// @Router       /api/status/{id} [put]
func (h *StatusHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover status personalizado
// @Tags         status
// @Security     Bearer
// @Param        id  path  int  true  "ID do status"
// @Success      204  "removido"
// @Router       /api/status/{id} [delete]
func (h *StatusHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
