package http

import (
	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
)

// DevolucaoHandler trata as requisições HTTP de devoluções (protegido).
// O PUT substitui a devolução e a lista de itens inteira de uma vez.
type DevolucaoHandler struct {
	uc *usecase.DevolucaoUseCase
}

func NewDevolucaoHandler(uc *usecase.DevolucaoUseCase) *DevolucaoHandler {
	return &DevolucaoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar devolução com itens
// @Tags         devolucoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DevolucaoRequest  true  "Devolução e itens"
// @Success      201   {object}  dto.DevolucaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/devolucoes [post]
func (h *DevolucaoHandler) Create(c *fiber.Ctx) error {
	var in dto.DevolucaoRequest
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
// @Summary      Obter devolução por ID (com itens)
// @Tags         devolucoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da devolução"
// @Success      200  {object}  dto.DevolucaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/devolucoes/{id} [get]
func (h *DevolucaoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar devoluções
// @Tags         devolucoes
// @Security     Bearer
// @Produce      json
// @Param        busca  query  string  false  "Termo de busca (inclui os itens)"
// @Success      200    {object}  dto.DevolucaoListResponse
// @Router       /api/devolucoes [get]
func (h *DevolucaoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("busca"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar devolução (substitui os itens)
// @Tags         devolucoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da devolução"
// @Param        body  body  dto.DevolucaoRequest  true  "Devolução e itens"
// @Success      200   {object}  dto.DevolucaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/devolucoes/{id} [put]
func (h *DevolucaoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	var in dto.DevolucaoRequest
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
// @Summary      Remover devolução (itens caem em cascata)
// @Tags         devolucoes
// @Security     Bearer
// @Param        id  path  int  true  "ID da devolução"
// @Success      204  "removida"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/devolucoes/{id} [delete]
func (h *DevolucaoHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Apagar todas as devoluções
// @Tags         devolucoes
// @Security     Bearer
// @Success      204  "coleção limpa"
// @Router       /api/devolucoes [delete]
func (h *DevolucaoHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
