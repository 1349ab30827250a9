package http

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/backup"
)

// BackupHandler trata exportação e restauração de backup (protegido).
// A restauração é em duas fases: importar gera um resumo e deixa o
// documento pendente; confirmar aplica; cancelar descarta.
type BackupHandler struct {
	codec *backup.Codec
	orch  *backup.Orchestrator
}

func NewBackupHandler(codec *backup.Codec, orch *backup.Orchestrator) *BackupHandler {
	return &BackupHandler{codec: codec, orch: orch}
}

// Exportar godoc
// @Summary      Exportar backup completo
// @Description  Gera o arquivo JSON com todas as coleções para download.
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackupDocument
// @Router       /api/backup/exportar [get]
func (h *BackupHandler) Exportar(c *fiber.Ctx) error {
	doc, err := h.codec.Export(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return respondError(c, err)
	}
	nome := fmt.Sprintf("backup-garantias-%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nome))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// Importar godoc
// @Summary      Importar backup (pré-visualização)
// @Description  Valida o arquivo enviado e devolve o resumo do que será
// @Description  restaurado. Nada é gravado até a confirmação.
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.RestoreSummary
// @Failure      400  {object}  dto.ErrorResponse  "JSON malformado"
// @Failure      422  {object}  dto.ErrorResponse  "estrutura não reconhecida"
// @Router       /api/backup/importar [post]
func (h *BackupHandler) Importar(c *fiber.Ctx) error {
	resumo, err := h.orch.Preview(c.Body())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resumo)
}

// Confirmar godoc
// @Summary      Confirmar a restauração pendente
// @Description  Substitui todos os dados pelo conteúdo do backup importado.
// @Tags         backup
// @Security     Bearer
// @Success      204  "dados restaurados"
// @Failure      409  {object}  dto.ErrorResponse  "nenhuma restauração pendente"
// @Router       /api/backup/confirmar [post]
func (h *BackupHandler) Confirmar(c *fiber.Ctx) error {
	if err := h.orch.Confirm(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancelar godoc
// @Summary      Cancelar a restauração pendente
// @Tags         backup
// @Security     Bearer
// @Success      204  "restauração descartada"
// @Router       /api/backup/cancelar [post]
func (h *BackupHandler) Cancelar(c *fiber.Ctx) error {
	h.orch.Cancel()
	return c.SendStatus(fiber.StatusNoContent)
}

// Estado godoc
// @Summary      Estado atual do fluxo de restauração
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/backup/estado [get]
func (h *BackupHandler) Estado(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"estado": h.orch.Estado().String()})
}
