package http

import (
	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
)

// GarantiaHandler trata as requisições HTTP de garantias (protegido).
type GarantiaHandler struct {
	uc *usecase.GarantiaUseCase
}

func NewGarantiaHandler(uc *usecase.GarantiaUseCase) *GarantiaHandler {
	return &GarantiaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar garantia
// @Tags         garantias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GarantiaRequest  true  "Dados da garantia"
// @Success      201   {object}  dto.GarantiaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/garantias [post]
func (h *GarantiaHandler) Create(c *fiber.Ctx) error {
	var in dto.GarantiaRequest
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
// @Summary      Obter garantia por ID
// @Tags         garantias
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da garantia"
// @Success      200  {object}  dto.GarantiaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/garantias/{id} [get]
func (h *GarantiaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar garantias
// @Tags         garantias
// @Security     Bearer
// @Produce      json
// @Param        busca   query  string  false  "Termo de busca (ignora acentos e maiúsculas)"
// @Param        limit   query  int     false  "Limite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.GarantiaListResponse
// @Router       /api/garantias [get]
func (h *GarantiaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("busca"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar garantia
// @Tags         garantias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da garantia"
// @Param        body  body  dto.GarantiaRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.GarantiaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/garantias/{id} [put]
func (h *GarantiaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: err.Error()})
	}
	var in dto.GarantiaRequest
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
// @Summary      Remover garantia
// @Tags         garantias
// @Security     Bearer
// @Param        id  path  int  true  "ID da garantia"
// @Success      204  "removida"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/garantias/{id} [delete]
func (h *GarantiaHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Apagar todas as garantias
// @Tags         garantias
// @Security     Bearer
// @Success      204  "coleção limpa"
// @Router       /api/garantias [delete]
func (h *GarantiaHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
