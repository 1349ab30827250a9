package http

import (
	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
)

// PessoaHandler trata as requisições HTTP de pessoas (protegido).
// A query ?tipo= restringe a listagem a clientes ou mecânicos.
type PessoaHandler struct {
	uc *usecase.PessoaUseCase
}

func NewPessoaHandler(uc *usecase.PessoaUseCase) *PessoaHandler {
	return &PessoaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar pessoa
// @Tags         pessoas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PessoaRequest  true  "Dados da pessoa"
// @Success      201   {object}  dto.PessoaResponse
// @Router       /api/pessoas [post]
func (h *PessoaHandler) Create(c *fiber.Ctx) error {
	var in dto.PessoaRequest
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
// @Summary      Obter pessoa por ID
// @Tags         pessoas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da pessoa"
// @Success      200  {object}  dto.PessoaResponse
// @Router       /api/pessoas/{id} [get]
func (h *PessoaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar pessoas
// @Tags         pessoas
// @Security     Bearer
// @Produce      json
// @Param        busca  query  string  false  "Termo de busca"
// @Param        tipo   query  string  false  "cliente ou mecanico"
// @Success      200    {object}  dto.PessoaListResponse
// @Router       /api/pessoas [get]
func (h *PessoaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("busca"), c.Query("tipo"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar pessoa
// @Tags         pessoas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da pessoa"
// @Param        body  body  dto.PessoaRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.PessoaResponse
// @Router       /api/pessoas/{id} [put]
func (h *PessoaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	var in dto.PessoaRequest
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
// @Summary      Remover pessoa
// @Tags         pessoas
// @Security     Bearer
// @Param        id  path  int  true  "ID da pessoa"
// @Success      204  "removida"
// @Router       /api/pessoas/{id} [delete]
func (h *PessoaHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Apagar todas as pessoas
// @Tags         pessoas
// @Security     Bearer
// @Success      204  "coleção limpa"
// @Router       /api/pessoas [delete]
func (h *PessoaHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
