package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	"github.com/esc4n0rx/hbtracker-api/internal/application/stock"
	"github.com/esc4n0rx/hbtracker-api/internal/domain"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
	"github.com/esc4n0rx/hbtracker-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: repositórios em memória com inventário e ledger carregados
// ──────────────────────────────────────────────────────────────────────────────

type queryFixture struct {
	ingest    *stock.IngestUseCase
	inventory *stock.InventoryUseCase
	query     *stock.QueryUseCase
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	movRepo := memory.NewMovementRepository()
	invRepo := memory.NewInventoryRepository()
	tx := memory.NewTxRunner(movRepo, invRepo)
	resolver := stock.NewResolver(invRepo)
	return &queryFixture{
		ingest:    stock.NewIngestUseCase(tx),
		inventory: stock.NewInventoryUseCase(tx, testBaseline, nil),
		query:     stock.NewQueryUseCase(movRepo, resolver, testBaseline),
	}
}

func (f *queryFixture) loadInventory(t *testing.T, rows ...dto.InventoryRowRequest) {
	t.Helper()
	_, failed, err := f.inventory.ReplaceAll(context.Background(), rows)
	require.NoError(t, err)
	require.Empty(t, failed)
}

func (f *queryFixture) loadMovements(t *testing.T, rows ...dto.MovementRowRequest) {
	t.Helper()
	_, _, err := f.ingest.AppendBatch(context.Background(), rows)
	require.NoError(t, err)
}

func remessa(destino, rti, qty, data string) dto.MovementRowRequest {
	return dto.MovementRowRequest{
		LocalOrigem:   "CD SP",
		LocalDestino:  destino,
		TipoMovimento: "Remessa",
		RTI:           rti,
		Quantidade:    qty,
		Data:          data,
	}
}

func findLocal(resp *dto.StockResponse, local string) *dto.LocationStockDTO {
	for i := range resp.Locais {
		if resp.Locais[i].Local == local {
			return &resp.Locais[i]
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ProjectAll: reconciliação de ponta a ponta
// ──────────────────────────────────────────────────────────────────────────────

// Inventário de 50 + Remessa de 10 depois do corte = 60, com o rótulo do
// ledger casado por distância de edição contra a chave do inventário.
func TestProjectAll_LojaComBaselineResolvido(t *testing.T) {
	f := newQueryFixture(t)
	f.loadInventory(t, dto.InventoryRowRequest{LojaNome: "LOJA F036 - Recreio A5", Ativo: "HB618", Quantidade: "50"})
	f.loadMovements(t, remessa("LOJA F036 - Recreio A5", "HB618", "10", "10/06/2025"))

	resp, err := f.query.ProjectAll(context.Background())
	require.NoError(t, err)

	loja := findLocal(resp, "LOJA F036 - Recreio A5")
	require.NotNil(t, loja)
	assert.Equal(t, "loja", loja.Tipo)
	assert.Equal(t, int64(60), loja.Saldos["HB618"])

	cd := findLocal(resp, "CD SP")
	require.NotNil(t, cd)
	assert.Equal(t, "cd", cd.Tipo)
	assert.Equal(t, int64(-10), cd.Saldos["HB618"])
}

// Rótulo com erro de digitação ainda resolve o baseline (limiar 3).
func TestProjectAll_CasamentoAproximado(t *testing.T) {
	f := newQueryFixture(t)
	f.loadInventory(t, dto.InventoryRowRequest{LojaNome: "RECREIO A5", Ativo: "HB618", Quantidade: "50"})
	f.loadMovements(t, remessa("LOJA F036 - RECRElO A5", "HB618", "10", "10/06/2025"))

	resp, err := f.query.ProjectAll(context.Background())
	require.NoError(t, err)

	loja := findLocal(resp, "LOJA F036 - RECRElO A5")
	require.NotNil(t, loja)
	assert.Equal(t, int64(60), loja.Saldos["HB618"])
}

// Loja sem inventário casado: abertura vazia, o movimento conta sozinho.
func TestProjectAll_LojaSemBaselineDegradaParaZero(t *testing.T) {
	f := newQueryFixture(t)
	f.loadMovements(t, remessa("LOJA X999 - Desconhecida", "HB623", "10", "10/06/2025"))

	resp, err := f.query.ProjectAll(context.Background())
	require.NoError(t, err)

	loja := findLocal(resp, "LOJA X999 - Desconhecida")
	require.NotNil(t, loja)
	assert.Equal(t, int64(10), loja.Saldos["HB623"])
}

// Movimento de loja anterior à data do inventário não entra na projeção.
func TestProjectAll_MovimentoAnteriorAoCorteIgnorado(t *testing.T) {
	f := newQueryFixture(t)
	f.loadInventory(t, dto.InventoryRowRequest{LojaNome: "RECREIO A5", Ativo: "HB618", Quantidade: "50"})
	f.loadMovements(t,
		remessa("LOJA F036 - Recreio A5", "HB618", "10", "01/06/2025"),
		remessa("LOJA F036 - Recreio A5", "HB618", "10", "10/06/2025"),
	)

	resp, err := f.query.ProjectAll(context.Background())
	require.NoError(t, err)

	loja := findLocal(resp, "LOJA F036 - Recreio A5")
	require.NotNil(t, loja)
	assert.Equal(t, int64(60), loja.Saldos["HB618"])
}

// Limpezas independentes: limpar o ledger não toca o inventário.
func TestProjectAll_ClearLedgerPreservaInventario(t *testing.T) {
	f := newQueryFixture(t)
	f.loadInventory(t, dto.InventoryRowRequest{LojaNome: "RECREIO A5", Ativo: "HB618", Quantidade: "50"})
	f.loadMovements(t, remessa("LOJA F036 - Recreio A5", "HB618", "10", "10/06/2025"))

	require.NoError(t, f.ingest.ClearLedger(context.Background()))

	resolve, err := f.query.Resolve(context.Background(), "LOJA F036 - Recreio A5")
	require.NoError(t, err)
	assert.True(t, resolve.Encontrado)
	assert.Equal(t, "RECREIO A5", resolve.NomeSimples)
}

// ──────────────────────────────────────────────────────────────────────────────
// EvolutionFor / FlowFor / HistoryFor / Locations / Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestEvolutionFor_LojaComBaseline(t *testing.T) {
	f := newQueryFixture(t)
	f.loadInventory(t, dto.InventoryRowRequest{LojaNome: "RECREIO A5", Ativo: "HB618", Quantidade: "50"})
	f.loadMovements(t,
		remessa("LOJA F036 - Recreio A5", "HB618", "10", "10/06/2025"),
		remessa("LOJA F036 - Recreio A5", "HB618", "5", "12/06/2025"),
	)

	resp, err := f.query.EvolutionFor(context.Background(), "LOJA F036 - Recreio A5")
	require.NoError(t, err)

	require.Len(t, resp.Entradas, 2)
	assert.Equal(t, "2025-06-10", resp.Entradas[0].Data)
	assert.Equal(t, int64(50), resp.Entradas[0].Abertura["HB618"])
	assert.Equal(t, int64(60), resp.Entradas[0].Fechamento["HB618"])
	assert.Equal(t, int64(60), resp.Entradas[1].Abertura["HB618"])
	assert.Equal(t, int64(65), resp.Entradas[1].Fechamento["HB618"])
}

func TestEvolutionFor_LocalObrigatorio(t *testing.T) {
	f := newQueryFixture(t)
	_, err := f.query.EvolutionFor(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFlowFor_ResumoDoCD(t *testing.T) {
	f := newQueryFixture(t)
	f.loadMovements(t,
		remessa("LOJA A1 - Tijuca", "HB623", "10", "10/06/2025"),
		dto.MovementRowRequest{
			LocalOrigem:   "LOJA A1 - Tijuca",
			LocalDestino:  "CD SP",
			TipoMovimento: "Regresso",
			RTI:           "HB623",
			Quantidade:    "30",
			Data:          "11/06/2025",
		},
	)

	resp, err := f.query.FlowFor(context.Background(), "CD SP")
	require.NoError(t, err)

	assert.Equal(t, int64(30), resp.Entradas["Regresso"]["HB623"])
	assert.Equal(t, int64(10), resp.Saidas["Remessa"]["HB623"])
}

func TestHistoryFor_OrdemDescendente(t *testing.T) {
	f := newQueryFixture(t)
	f.loadMovements(t,
		remessa("LOJA A1 - Tijuca", "HB623", "10", "10/06/2025"),
		remessa("LOJA A1 - Tijuca", "HB623", "5", "12/06/2025"),
	)

	resp, err := f.query.HistoryFor(context.Background(), "CD SP")
	require.NoError(t, err)

	require.Len(t, resp.Movimentos, 2)
	assert.Equal(t, "2025-06-12", resp.Movimentos[0].Data)
	assert.Equal(t, "2025-06-10", resp.Movimentos[1].Data)
}

func TestLocations_PorClasse(t *testing.T) {
	f := newQueryFixture(t)
	f.loadMovements(t,
		remessa("LOJA A1 - Tijuca", "HB623", "10", "10/06/2025"),
		remessa("LOJA B2 - Centro", "HB623", "10", "10/06/2025"),
	)

	lojas, err := f.query.Locations(context.Background(), entity.ClassStore)
	require.NoError(t, err)
	assert.Equal(t, []string{"LOJA A1 - Tijuca", "LOJA B2 - Centro"}, lojas.Locais)

	cds, err := f.query.Locations(context.Background(), entity.ClassWarehouse)
	require.NoError(t, err)
	assert.Equal(t, []string{"CD SP"}, cds.Locais)
}

// CDs nunca resolvem contra o inventário: o rótulo é a identidade.
func TestResolve_CDNuncaResolve(t *testing.T) {
	f := newQueryFixture(t)
	f.loadInventory(t, dto.InventoryRowRequest{LojaNome: "RECREIO A5", Ativo: "HB618", Quantidade: "50"})

	resp, err := f.query.Resolve(context.Background(), "CD SP")
	require.NoError(t, err)
	assert.False(t, resp.Encontrado)
	assert.Empty(t, resp.NomeSimples)
}

func TestResolve_InventarioVazio(t *testing.T) {
	f := newQueryFixture(t)

	resp, err := f.query.Resolve(context.Background(), "LOJA F036 - Recreio A5")
	require.NoError(t, err)
	assert.False(t, resp.Encontrado)
}
