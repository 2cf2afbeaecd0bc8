package repository

import (
	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
)

// MovementRepository define a porta de persistência do ledger de movimentos.
// O ledger é append-only: registros nunca são atualizados; a única remoção é
// o Clear completo.
type MovementRepository interface {
	// InsertBatch persiste o lote inteiro atomicamente, atribuindo a cada
	// registro o contador de ingestão (Seq) em ordem.
	InsertBatch(movements []*entity.Movement) error
	// ListAll devolve todo o ledger em ordem (data asc, seq asc).
	ListAll() ([]*entity.Movement, error)
	// ListByLocation devolve os movimentos em que o local é origem ou
	// destino, em ordem (data asc, seq asc).
	ListByLocation(label string) ([]*entity.Movement, error)
	// HistoryByLocation devolve os mesmos movimentos em ordem de data
	// descendente (visão de histórico da interface).
	HistoryByLocation(label string) ([]*entity.Movement, error)
	// DistinctLocations lista os rótulos distintos da classe dada que
	// aparecem como origem ou destino, em ordem lexical.
	DistinctLocations(class entity.LocationClass) ([]string, error)
	// Clear esvazia o ledger. Irreversível.
	Clear() error
}
