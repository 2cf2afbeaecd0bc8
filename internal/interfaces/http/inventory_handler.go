package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	"github.com/esc4n0rx/hbtracker-api/internal/application/stock"
	"github.com/esc4n0rx/hbtracker-api/internal/domain"
)

// InventoryHandler trata a carga substitutiva do inventário inicial.
type InventoryHandler struct {
	uc *stock.InventoryUseCase
}

// NewInventoryHandler constrói o handler de inventário.
func NewInventoryHandler(uc *stock.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Upload godoc
// @Summary      Substitui o inventário inicial
// @Description  Melhor esforço por linha: falhas são devolvidas com índice e
// @Description  motivo; as linhas válidas entram mesmo assim.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadInventoryRequest  true  "linhas do inventário"
// @Success      201   {object}  dto.UploadInventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/inventory/upload [post]
func (h *InventoryHandler) Upload(c *fiber.Ctx) error {
	var in dto.UploadInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	inserted, failed, err := h.uc.ReplaceAll(c.Context(), in.Linhas)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyBatch) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BATCH", Message: "lote vazio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadInventoryResponse{
		Inseridos: inserted,
		Falhas:    toFailedRows(failed),
	})
}

// Clear godoc
// @Summary      Limpa o inventário inicial
// @Description  Irreversível. Não toca o ledger de movimentos.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory [delete]
func (h *InventoryHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearInventory(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "inventário limpo"})
}
