package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	"github.com/esc4n0rx/hbtracker-api/internal/domain"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/rti"
)

// InventoryUseCase carrega o inventário inicial das lojas.
// Política melhor-esforço por linha: a carga limpa o inventário anterior e
// insere linha a linha; uma linha malformada é reportada com seu índice e
// motivo, sem abortar o resto do lote. Essa assimetria com o ledger é
// intencional e deve ser preservada.
type InventoryUseCase struct {
	txRunner     TxRunner
	baselineDate time.Time
	validAssets  map[string]struct{}
}

// NewInventoryUseCase constrói o caso de uso. validAssets vazio desativa a
// restrição de ativos aceitos.
func NewInventoryUseCase(txRunner TxRunner, baselineDate time.Time, validAssets []string) *InventoryUseCase {
	set := make(map[string]struct{}, len(validAssets))
	for _, a := range validAssets {
		set[rti.NormalizeAsset(a)] = struct{}{}
	}
	return &InventoryUseCase{
		txRunner:     txRunner,
		baselineDate: baselineDate,
		validAssets:  set,
	}
}

// ReplaceAll substitui o inventário inicial inteiro pelas linhas dadas.
// Devolve a quantidade inserida e as falhas por linha. Linhas duplicadas em
// (loja, ativo): a última vence. Lote vazio -> domain.ErrEmptyBatch.
func (uc *InventoryUseCase) ReplaceAll(ctx context.Context, rows []dto.InventoryRowRequest) (int, []domain.RowError, error) {
	if len(rows) == 0 {
		return 0, nil, domain.ErrEmptyBatch
	}

	entries := make([]*entity.InventoryEntry, 0, len(rows))
	var failed []domain.RowError

	for i, row := range rows {
		e, rowErr := uc.buildEntry(i, row)
		if rowErr != nil {
			failed = append(failed, *rowErr)
			continue
		}
		entries = append(entries, e)
	}

	err := uc.txRunner.Run(ctx, func(_ repository.MovementRepository, invRepo repository.InventoryRepository) error {
		return invRepo.ReplaceAll(entries)
	})
	if err != nil {
		return 0, nil, err
	}
	return len(entries), failed, nil
}

// buildEntry valida uma linha do inventário. Nome da loja obrigatório;
// quantidade inteira (negativos aceitos, o valor é usado como está); ativo
// restrito à lista configurada.
func (uc *InventoryUseCase) buildEntry(idx int, row dto.InventoryRowRequest) (*entity.InventoryEntry, *domain.RowError) {
	name := rti.ExtractSimpleName(row.LojaNome)
	if strings.TrimSpace(name) == "" {
		return nil, &domain.RowError{Index: idx, Field: "loja_nome", Reason: "nome da loja ausente"}
	}

	asset := rti.NormalizeAsset(row.Ativo)
	if len(uc.validAssets) > 0 {
		if _, ok := uc.validAssets[asset]; !ok {
			return nil, &domain.RowError{Index: idx, Field: "ativo", Reason: fmt.Sprintf("ativo inválido: %q", row.Ativo)}
		}
	}

	qty, err := parseQuantity(row.Quantidade, true)
	if err != nil {
		return nil, &domain.RowError{Index: idx, Field: "quantidade", Reason: err.Error()}
	}

	return &entity.InventoryEntry{
		LojaNomeSimples: name,
		Ativo:           asset,
		Quantidade:      qty,
		DataInventario:  uc.baselineDate,
	}, nil
}

// ClearInventory esvazia o inventário inicial.
func (uc *InventoryUseCase) ClearInventory(ctx context.Context) error {
	return uc.txRunner.Run(ctx, func(_ repository.MovementRepository, invRepo repository.InventoryRepository) error {
		return invRepo.Clear()
	})
}
