package stock

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	"github.com/esc4n0rx/hbtracker-api/internal/domain"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/stock"
)

const dayLayout = "2006-01-02"

// QueryUseCase responde as consultas derivadas do ledger: projeção de saldos,
// evolução diária, resumo de fluxo, histórico e listagem de locais. Nada aqui
// escreve; toda resposta é recalculada do zero a partir do ledger corrente.
type QueryUseCase struct {
	movRepo      repository.MovementRepository
	resolver     *Resolver
	baselineDate time.Time
}

// NewQueryUseCase constrói o caso de uso de consulta.
func NewQueryUseCase(movRepo repository.MovementRepository, resolver *Resolver, baselineDate time.Time) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo, resolver: resolver, baselineDate: baselineDate}
}

// baselineFunc adapta o resolvedor para o motor de replay.
func (uc *QueryUseCase) baselineFunc() stock.BaselineFunc {
	return func(location string) stock.Balance {
		return stock.Balance(uc.resolver.BaselineFor(location))
	}
}

// ProjectAll faz o replay completo do ledger e devolve o saldo agregado de
// todos os locais, em ordem lexical de rótulo.
func (uc *QueryUseCase) ProjectAll(ctx context.Context) (*dto.StockResponse, error) {
	movs, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("erro listando o ledger: %w", err)
	}

	proj := stock.Project(movs, uc.baselineFunc(), uc.baselineDate)

	labels := make([]string, 0, len(proj))
	for label := range proj {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	resp := &dto.StockResponse{Locais: make([]dto.LocationStockDTO, 0, len(labels))}
	for _, label := range labels {
		resp.Locais = append(resp.Locais, dto.LocationStockDTO{
			Local:  label,
			Tipo:   string(entity.ClassOf(label)),
			Saldos: proj[label],
		})
	}
	return resp, nil
}

// EvolutionFor reconstrói a evolução dia a dia do saldo de um local.
func (uc *QueryUseCase) EvolutionFor(ctx context.Context, label string) (*dto.EvolutionResponse, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: local ausente", domain.ErrInvalidInput)
	}
	movs, err := uc.movRepo.ListByLocation(label)
	if err != nil {
		return nil, fmt.Errorf("erro listando movimentos de %q: %w", label, err)
	}

	var opening stock.Balance
	if entity.IsStore(label) {
		opening = stock.Balance(uc.resolver.BaselineFor(label))
	} else {
		opening = make(stock.Balance)
	}

	entries := stock.Evolution(label, movs, opening, uc.baselineDate)

	resp := &dto.EvolutionResponse{Local: label, Entradas: make([]dto.EvolutionEntryDTO, 0, len(entries))}
	for _, e := range entries {
		resp.Entradas = append(resp.Entradas, dto.EvolutionEntryDTO{
			Data:       e.Date.Format(dayLayout),
			Abertura:   e.Opening,
			Movimentos: toMovementDTOs(e.Movements),
			Fechamento: e.Closing,
		})
	}
	return resp, nil
}

// FlowFor categoriza os movimentos de um local em entradas, saídas e
// devoluções, agregadas por tipo e ativo.
func (uc *QueryUseCase) FlowFor(ctx context.Context, label string) (*dto.FlowResponse, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: local ausente", domain.ErrInvalidInput)
	}
	movs, err := uc.movRepo.ListByLocation(label)
	if err != nil {
		return nil, fmt.Errorf("erro listando movimentos de %q: %w", label, err)
	}

	sum := stock.Flow(label, movs)
	return &dto.FlowResponse{
		Local:      label,
		Entradas:   toFlowTable(sum.Inflows),
		Saidas:     toFlowTable(sum.Outflows),
		Devolucoes: toFlowTable(sum.Devolutions),
	}, nil
}

// HistoryFor devolve o histórico de movimentos de um local em ordem de data
// descendente.
func (uc *QueryUseCase) HistoryFor(ctx context.Context, label string) (*dto.HistoryResponse, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: local ausente", domain.ErrInvalidInput)
	}
	movs, err := uc.movRepo.HistoryByLocation(label)
	if err != nil {
		return nil, fmt.Errorf("erro listando histórico de %q: %w", label, err)
	}
	return &dto.HistoryResponse{Local: label, Movimentos: toMovementDTOs(movs)}, nil
}

// Locations lista os rótulos distintos da classe dada que aparecem no ledger.
func (uc *QueryUseCase) Locations(ctx context.Context, class entity.LocationClass) (*dto.LocationsResponse, error) {
	labels, err := uc.movRepo.DistinctLocations(class)
	if err != nil {
		return nil, fmt.Errorf("erro listando locais: %w", err)
	}
	if labels == nil {
		labels = []string{}
	}
	return &dto.LocationsResponse{Tipo: string(class), Locais: labels}, nil
}

// Resolve expõe o casamento aproximado de um rótulo contra o inventário.
func (uc *QueryUseCase) Resolve(ctx context.Context, label string) (*dto.ResolveResponse, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: local ausente", domain.ErrInvalidInput)
	}
	key, ok, err := uc.resolver.Resolve(label)
	if err != nil {
		return nil, err
	}
	return &dto.ResolveResponse{Local: label, NomeSimples: key, Encontrado: ok}, nil
}

func toMovementDTOs(movs []*entity.Movement) []dto.MovementDTO {
	out := make([]dto.MovementDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementDTO{
			Data:          m.Data.Format(dayLayout),
			TipoMovimento: string(m.Tipo),
			RTI:           m.RTI,
			LocalOrigem:   m.Origem,
			LocalDestino:  m.Destino,
			Quantidade:    m.Quantidade,
			Guia:          m.Guia,
			NotaFiscal:    m.NotaFiscal,
		})
	}
	return out
}

func toFlowTable(table map[entity.MovementType]stock.Balance) map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(table))
	for tipo, bal := range table {
		out[string(tipo)] = bal
	}
	return out
}
