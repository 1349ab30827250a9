package http

import (
	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/dto"
	"garantias/internal/application/usecase"
)

// EmpresaHandler trata o registro único de dados da empresa (protegido).
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Get godoc
// @Summary      Obter dados da empresa
// @Tags         empresa
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse  "empresa ainda não configurada"
// @Router       /api/empresa [get]
func (h *EmpresaHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Criar ou substituir os dados da empresa
// @Tags         empresa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmpresaRequest  true  "Dados da empresa"
// @Success      200   {object}  dto.EmpresaResponse
// @Router       /api/empresa [put]
func (h *EmpresaHandler) Save(c *fiber.Ctx) error {
	var in dto.EmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Apagar os dados da empresa
// @Tags         empresa
// @Security     Bearer
// @Success      204  "registro removido"
// @Router       /api/empresa [delete]
func (h *EmpresaHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
