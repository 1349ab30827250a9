package http

import (
	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
)

// FornecedorHandler trata as requisições HTTP de fornecedores (protegido).
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create godoc
// @Summary      Criar fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FornecedorRequest  true  "Dados do fornecedor"
// @Success      201   {object}  dto.FornecedorResponse
// @Router       /api/fornecedores [post]
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.FornecedorRequest
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
// @Summary      Obter fornecedor por ID
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do fornecedor"
// @Success      200  {object}  dto.FornecedorResponse
// @Router       /api/fornecedores/{id} [get]
func (h *FornecedorHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar fornecedores
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Param        busca  query  string  false  "Termo de busca"
// @Success      200    {object}  dto.FornecedorListResponse
// @Router       /api/fornecedores [get]
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("busca"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do fornecedor"
// @Param        body  body  dto.FornecedorRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.FornecedorResponse
// @Router       /api/fornecedores/{id} [put]
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	var in dto.FornecedorRequest
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
// @Summary      Remover fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Param        id  path  int  true  "ID do fornecedor"
// @Success      204  "removido"
// @Router       /api/fornecedores/{id} [delete]
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Apagar todos os fornecedores
// @Tags         fornecedores
// @Security     Bearer
// @Success      204  "coleção limpa"
// @Router       /api/fornecedores [delete]
func (h *FornecedorHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
