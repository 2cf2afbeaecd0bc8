package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	"github.com/esc4n0rx/hbtracker-api/internal/application/stock"
	"github.com/esc4n0rx/hbtracker-api/internal/domain"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
)

// StockHandler trata as consultas derivadas do ledger (saldos, evolução,
// fluxo, locais e resolução de rótulos).
type StockHandler struct {
	query *stock.QueryUseCase
}

// NewStockHandler constrói o handler de consultas.
func NewStockHandler(query *stock.QueryUseCase) *StockHandler {
	return &StockHandler{query: query}
}

// GetStock godoc
// @Summary      Projeção completa de saldos
// @Description  Replay do ledger inteiro: saldo agregado por local e ativo.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	out, err := h.query.ProjectAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetEvolution godoc
// @Summary      Evolução diária do saldo de um local
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        local  query  string  true  "rótulo do local (CD ou loja)"
// @Success      200  {object}  dto.EvolutionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock/evolution [get]
func (h *StockHandler) GetEvolution(c *fiber.Ctx) error {
	local := c.Query("local")
	out, err := h.query.EvolutionFor(c.Context(), local)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro local é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetFlow godoc
// @Summary      Resumo de fluxo de um local
// @Description  Entradas, saídas e devoluções agregadas por tipo e ativo.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        local  query  string  true  "rótulo do local (CD ou loja)"
// @Success      200  {object}  dto.FlowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock/flow [get]
func (h *StockHandler) GetFlow(c *fiber.Ctx) error {
	local := c.Query("local")
	out, err := h.query.FlowFor(c.Context(), local)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro local é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetLocations godoc
// @Summary      Locais distintos do ledger
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        tipo  query  string  true  "classe do local: cd ou loja"
// @Success      200  {object}  dto.LocationsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/locations [get]
func (h *StockHandler) GetLocations(c *fiber.Ctx) error {
	class, ok := entity.ParseLocationClass(c.Query("tipo"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo deve ser cd ou loja"})
	}
	out, err := h.query.Locations(c.Context(), class)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Casamento aproximado de um rótulo de loja
// @Description  Resolve o rótulo do ledger contra as chaves do inventário
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        local  query  string  true  "rótulo do local"
// @Success      200  {object}  dto.ResolveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/locations/resolve [get]
func (h *StockHandler) Resolve(c *fiber.Ctx) error {
	local := c.Query("local")
	out, err := h.query.Resolve(c.Context(), local)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro local é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
