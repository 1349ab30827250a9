package http

import (
	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
)

// LoteHandler trata as requisições HTTP de lotes (protegido).
type LoteHandler struct {
	uc *usecase.LoteUseCase
}

func NewLoteHandler(uc *usecase.LoteUseCase) *LoteHandler {
	return &LoteHandler{uc: uc}
}

// Create godoc
// @Summary      Criar lote
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoteRequest  true  "Dados do lote"
// @Success      201   {object}  dto.LoteResponse
// @Router       /api/lotes [post]
func (h *LoteHandler) Create(c *fiber.Ctx) error {
	var in dto.LoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter lote por ID
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do lote"
// @Success      200  {object}  dto.LoteResponse
// @Router       /api/lotes/{id} [get]
func (h *LoteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lotes
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        busca  query  string  false  "Termo de busca"
// @Success      200    {object}  dto.LoteListResponse
// @Router       /api/lotes [get]
func (h *LoteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("busca"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar lote
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do lote"
// @Param        body  body  dto.LoteRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.LoteResponse
// @Router       /api/lotes/{id} [put]
func (h *LoteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	var in dto.LoteRequest
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
// @Summary      Remover lote
// @Tags         lotes
// @Security     Bearer
// @Param        id  path  int  true  "ID do lote"
// @Success      204  "removido"
// @Router       /api/lotes/{id} [delete]
func (h *LoteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear godoc
// @Summary      Apagar todos os lotes
// @Tags         lotes
// @Security     Bearer
// @Success      204  "coleção limpa"
// @Router       /api/lotes [delete]
func (h *LoteHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
