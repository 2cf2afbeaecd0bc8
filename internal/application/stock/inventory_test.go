package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	"github.com/esc4n0rx/hbtracker-api/internal/application/stock"
	"github.com/esc4n0rx/hbtracker-api/internal/domain"
	"github.com/esc4n0rx/hbtracker-api/internal/infrastructure/memory"
)

var testBaseline = time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

func newInventoryFixture(validAssets []string) (*stock.InventoryUseCase, *memory.InventoryRepository) {
	movRepo := memory.NewMovementRepository()
	invRepo := memory.NewInventoryRepository()
	tx := memory.NewTxRunner(movRepo, invRepo)
	return stock.NewInventoryUseCase(tx, testBaseline, validAssets), invRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// ReplaceAll
// ──────────────────────────────────────────────────────────────────────────────

func TestReplaceAll_CargaValida(t *testing.T) {
	uc, invRepo := newInventoryFixture([]string{"HB623", "HB618"})

	inserted, failed, err := uc.ReplaceAll(context.Background(), []dto.InventoryRowRequest{
		{LojaNome: "LOJA F036 - Recreio A5", Ativo: "hb 618", Quantidade: "50"},
		{LojaNome: "LOJA A1 - Tijuca", Ativo: "HB623", Quantidade: "30"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Empty(t, failed)

	bal, err := invRepo.Lookup("RECREIO A5")
	require.NoError(t, err)
	assert.Equal(t, int64(50), bal["HB618"], "nome da loja e ativo devem ser normalizados")
}

// Melhor esforço: linhas malformadas são reportadas com índice e motivo; as
// válidas entram mesmo assim.
func TestReplaceAll_MelhorEsforcoPorLinha(t *testing.T) {
	uc, invRepo := newInventoryFixture([]string{"HB623", "HB618"})

	inserted, failed, err := uc.ReplaceAll(context.Background(), []dto.InventoryRowRequest{
		{LojaNome: "LOJA F036 - Recreio A5", Ativo: "HB618", Quantidade: "50"},
		{LojaNome: "LOJA A1 - Tijuca", Ativo: "HB618", Quantidade: "abc"},
		{LojaNome: "LOJA B2 - Centro", Ativo: "CX999", Quantidade: "10"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	require.Len(t, failed, 2)
	assert.Equal(t, 1, failed[0].Index)
	assert.Equal(t, "quantidade", failed[0].Field)
	assert.Equal(t, 2, failed[1].Index)
	assert.Equal(t, "ativo", failed[1].Field)

	keys, _ := invRepo.Keys()
	assert.Equal(t, []string{"RECREIO A5"}, keys)
}

// A carga é substitutiva: o inventário anterior some por inteiro.
func TestReplaceAll_Substitutiva(t *testing.T) {
	uc, invRepo := newInventoryFixture(nil)

	_, _, err := uc.ReplaceAll(context.Background(), []dto.InventoryRowRequest{
		{LojaNome: "LOJA A1 - Tijuca", Ativo: "HB623", Quantidade: "30"},
	})
	require.NoError(t, err)

	_, _, err = uc.ReplaceAll(context.Background(), []dto.InventoryRowRequest{
		{LojaNome: "LOJA B2 - Centro", Ativo: "HB618", Quantidade: "10"},
	})
	require.NoError(t, err)

	keys, _ := invRepo.Keys()
	assert.Equal(t, []string{"CENTRO"}, keys)
}

// Linhas duplicadas em (loja, ativo): a última vence.
func TestReplaceAll_DuplicadaUltimaVence(t *testing.T) {
	uc, invRepo := newInventoryFixture(nil)

	_, _, err := uc.ReplaceAll(context.Background(), []dto.InventoryRowRequest{
		{LojaNome: "LOJA A1 - Tijuca", Ativo: "HB623", Quantidade: "30"},
		{LojaNome: "LOJA A1 - Tijuca", Ativo: "HB623", Quantidade: "45"},
	})
	require.NoError(t, err)

	bal, _ := invRepo.Lookup("TIJUCA")
	assert.Equal(t, int64(45), bal["HB623"])
}

// Quantidade negativa no inventário é aceita e usada como está.
func TestReplaceAll_QuantidadeNegativaAceita(t *testing.T) {
	uc, invRepo := newInventoryFixture(nil)

	inserted, failed, err := uc.ReplaceAll(context.Background(), []dto.InventoryRowRequest{
		{LojaNome: "LOJA A1 - Tijuca", Ativo: "HB623", Quantidade: "-5"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Empty(t, failed)

	bal, _ := invRepo.Lookup("TIJUCA")
	assert.Equal(t, int64(-5), bal["HB623"])
}

func TestReplaceAll_LoteVazio(t *testing.T) {
	uc, _ := newInventoryFixture(nil)

	_, _, err := uc.ReplaceAll(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

// Lista de ativos vazia desativa a restrição.
func TestReplaceAll_SemRestricaoDeAtivos(t *testing.T) {
	uc, _ := newInventoryFixture(nil)

	inserted, failed, err := uc.ReplaceAll(context.Background(), []dto.InventoryRowRequest{
		{LojaNome: "LOJA A1 - Tijuca", Ativo: "CX999", Quantidade: "10"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Empty(t, failed)
}

func TestClearInventory(t *testing.T) {
	uc, invRepo := newInventoryFixture(nil)

	_, _, err := uc.ReplaceAll(context.Background(), []dto.InventoryRowRequest{
		{LojaNome: "LOJA A1 - Tijuca", Ativo: "HB623", Quantidade: "30"},
	})
	require.NoError(t, err)

	require.NoError(t, uc.ClearInventory(context.Background()))

	keys, _ := invRepo.Keys()
	assert.Empty(t, keys)
}
