package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	"github.com/esc4n0rx/hbtracker-api/internal/application/stock"
	"github.com/esc4n0rx/hbtracker-api/internal/domain"
)

// MovementHandler trata a ingestão e o histórico do ledger de movimentos.
type MovementHandler struct {
	ingest *stock.IngestUseCase
	query  *stock.QueryUseCase
}

// NewMovementHandler constrói o handler de movimentos.
func NewMovementHandler(ingest *stock.IngestUseCase, query *stock.QueryUseCase) *MovementHandler {
	return &MovementHandler{ingest: ingest, query: query}
}

// Upload godoc
// @Summary      Append de um lote de movimentos
// @Description  Tudo-ou-nada: qualquer linha inválida rejeita o lote inteiro.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadMovementsRequest  true  "lote de movimentos"
// @Success      201   {object}  dto.UploadMovementsResponse
// @Failure      400   {object}  dto.BatchErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/movements/upload [post]
func (h *MovementHandler) Upload(c *fiber.Ctx) error {
	var in dto.UploadMovementsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	inserted, batchID, err := h.ingest.AppendBatch(c.Context(), in.Movimentos)
	if err != nil {
		var batchErr *domain.BatchError
		if errors.As(err, &batchErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.BatchErrorResponse{
				Code:    "BATCH_REJECTED",
				Message: "lote rejeitado: uma ou mais linhas inválidas",
				Falhas:  toFailedRows(batchErr.Rows),
			})
		}
		if errors.Is(err, domain.ErrEmptyBatch) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BATCH", Message: "lote vazio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadMovementsResponse{Inseridos: inserted, BatchID: batchID})
}

// History godoc
// @Summary      Histórico de movimentos de um local
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        local  query  string  true  "rótulo do local"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	local := c.Query("local")
	out, err := h.query.HistoryFor(c.Context(), local)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro local é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Limpa o ledger de movimentos
// @Description  Irreversível. Não toca o inventário inicial.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/movements [delete]
func (h *MovementHandler) Clear(c *fiber.Ctx) error {
	if err := h.ingest.ClearLedger(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "ledger limpo"})
}

func toFailedRows(rows []domain.RowError) []dto.FailedRowDTO {
	out := make([]dto.FailedRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FailedRowDTO{Index: r.Index, Field: r.Field, Reason: r.Reason})
	}
	return out
}
