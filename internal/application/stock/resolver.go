package stock

import (
	"fmt"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/match"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/rti"
)

// Resolver casa rótulos de loja do ledger com as chaves do inventário inicial.
// CDs nunca resolvem: o rótulo é a identidade e o saldo parte de zero.
type Resolver struct {
	invRepo repository.InventoryRepository
}

// NewResolver constrói o resolvedor sobre o repositório de inventário.
func NewResolver(invRepo repository.InventoryRepository) *Resolver {
	return &Resolver{invRepo: invRepo}
}

// Resolve devolve a chave de inventário casada com o rótulo, ou ausência
// quando o local não é loja, o inventário está vazio ou nenhuma chave fica
// dentro do limiar de distância.
func (r *Resolver) Resolve(label string) (string, bool, error) {
	if !entity.IsStore(label) {
		return "", false, nil
	}
	keys, err := r.invRepo.Keys()
	if err != nil {
		return "", false, fmt.Errorf("erro listando chaves do inventário: %w", err)
	}
	if len(keys) == 0 {
		return "", false, nil
	}
	simple := rti.ExtractSimpleName(label)
	key, ok := match.BestMatch(simple, keys)
	return key, ok, nil
}

// BaselineFor devolve o saldo de abertura do local. Lojas sem casamento ou
// qualquer erro de leitura degradam para o mapa vazio: a consulta nunca falha
// por baseline ausente.
func (r *Resolver) BaselineFor(label string) map[string]int64 {
	key, ok, err := r.Resolve(label)
	if err != nil || !ok {
		return map[string]int64{}
	}
	bal, err := r.invRepo.Lookup(key)
	if err != nil || bal == nil {
		return map[string]int64{}
	}
	return bal
}
