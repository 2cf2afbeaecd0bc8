package stock

import (
	"context"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
)

// TxRunner executa callbacks com os repositórios atados a uma mesma
// transação (Commit no sucesso, Rollback na falha). A implementação em
// memória apenas serializa o callback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
