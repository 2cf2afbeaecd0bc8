package memory

import (
	"context"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
)

// TxRunner em memória: não há transação real, o callback roda direto sobre os
// repositórios vivos. Cada repositório já serializa seus próprios acessos.
type TxRunner struct {
	movRepo repository.MovementRepository
	invRepo repository.InventoryRepository
}

// NewTxRunner constrói o runner sobre os repositórios em memória.
func NewTxRunner(movRepo repository.MovementRepository, invRepo repository.InventoryRepository) *TxRunner {
	return &TxRunner{movRepo: movRepo, invRepo: invRepo}
}

// Run executa o callback; erros de contexto são respeitados antes de começar.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(r.movRepo, r.invRepo)
}
