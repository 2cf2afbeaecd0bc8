package memory

import (
	"sort"
	"sync"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
)

// InventoryRepository guarda o inventário inicial em um mapa duplo
// loja -> ativo -> quantidade, protegido por RWMutex.
type InventoryRepository struct {
	mu      sync.RWMutex
	entries map[string]map[string]int64
}

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

// NewInventoryRepository cria um inventário vazio.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{entries: make(map[string]map[string]int64)}
}

// ReplaceAll limpa o inventário e insere as entradas dadas; entradas
// duplicadas em (loja, ativo): a última vence.
func (r *InventoryRepository) ReplaceAll(entries []*entity.InventoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]map[string]int64, len(entries))
	for _, e := range entries {
		byAsset, ok := r.entries[e.LojaNomeSimples]
		if !ok {
			byAsset = make(map[string]int64)
			r.entries[e.LojaNomeSimples] = byAsset
		}
		byAsset[e.Ativo] = e.Quantidade
	}
	return nil
}

// Lookup devolve uma cópia de ativo -> quantidade da loja, ou mapa vazio.
func (r *InventoryRepository) Lookup(storeSimpleName string) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int64)
	for asset, qty := range r.entries[storeSimpleName] {
		out[asset] = qty
	}
	return out, nil
}

// Keys devolve as chaves de loja em ordem lexical.
func (r *InventoryRepository) Keys() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

// Clear esvazia o inventário.
func (r *InventoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]map[string]int64)
	return nil
}
