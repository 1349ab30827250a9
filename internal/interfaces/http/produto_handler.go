package http

import (
	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
)

// ProdutoHandler trata as requisições HTTP do catálogo de produtos (protegido).
// A listagem com ?busca= alimenta o autocompletar dos formulários.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
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
// @Summary      Obter produto por ID
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar produtos
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        busca  query  string  false  "Termo de busca (código, descrição, marca, referência)"
// @Success      200    {object}  dto.ProdutoListResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("busca"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.ProdutoRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.ProdutoResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	var in dto.ProdutoRequest
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
// @Summary      Remover produto
// @Tags         produtos
// @Security     Bearer
// @Param        id  path  int  true  "ID do produto"
// @Success      204  "removido"
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Apagar todos os produtos
// @Tags         produtos
// @Security     Bearer
// @Success      204  "coleção limpa"
// @Router       /api/produtos [delete]
func (h *ProdutoHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
