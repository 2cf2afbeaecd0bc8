// Package memory fornece repositórios em memória para desenvolvimento e
// testes. A aplicação sobe com este backend quando nenhum banco está
// configurado; os dados morrem com o processo.
package memory

import (
	"sort"
	"sync"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
)

// MovementRepository guarda o ledger em um slice protegido por RWMutex,
// mantido em ordem (data asc, seq asc).
type MovementRepository struct {
	mu        sync.RWMutex
	movements []*entity.Movement
	seq       int64
}

var _ repository.MovementRepository = (*MovementRepository)(nil)

// NewMovementRepository cria um ledger vazio.
func NewMovementRepository() *MovementRepository {
	return &MovementRepository{}
}

// InsertBatch persiste o lote inteiro, atribuindo Seq em ordem de chegada.
func (r *MovementRepository) InsertBatch(movements []*entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range movements {
		r.seq++
		cp := *m
		cp.Seq = r.seq
		r.movements = append(r.movements, &cp)
	}
	sortLedger(r.movements)
	return nil
}

// ListAll devolve todo o ledger em ordem (data asc, seq asc).
func (r *MovementRepository) ListAll() ([]*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Movement, len(r.movements))
	copy(out, r.movements)
	return out, nil
}

// ListByLocation devolve os movimentos em que o local é ponta, em ordem
// (data asc, seq asc).
func (r *MovementRepository) ListByLocation(label string) ([]*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Movement
	for _, m := range r.movements {
		if m.Origem == label || m.Destino == label {
			out = append(out, m)
		}
	}
	return out, nil
}

// HistoryByLocation devolve os mesmos movimentos em ordem de data descendente.
func (r *MovementRepository) HistoryByLocation(label string) ([]*entity.Movement, error) {
	movs, err := r.ListByLocation(label)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movs, func(i, j int) bool {
		if !movs[i].Data.Equal(movs[j].Data) {
			return movs[i].Data.After(movs[j].Data)
		}
		return movs[i].Seq > movs[j].Seq
	})
	return movs, nil
}

// DistinctLocations lista os rótulos distintos da classe, em ordem lexical.
func (r *MovementRepository) DistinctLocations(class entity.LocationClass) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, m := range r.movements {
		for _, label := range []string{m.Origem, m.Destino} {
			if label == "" || entity.ClassOf(label) != class {
				continue
			}
			seen[label] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)
	return out, nil
}

// Clear esvazia o ledger.
func (r *MovementRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movements = nil
	return nil
}

func sortLedger(movs []*entity.Movement) {
	sort.SliceStable(movs, func(i, j int) bool {
		if !movs[i].Data.Equal(movs[j].Data) {
			return movs[i].Data.Before(movs[j].Data)
		}
		return movs[i].Seq < movs[j].Seq
	})
}
