package repository

import (
	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
)

// InventoryRepository define a porta de persistência do inventário inicial.
// A carga é sempre substitutiva: ReplaceAll limpa tudo antes de inserir; não
// existe merge incremental.
type InventoryRepository interface {
	// ReplaceAll limpa o inventário e insere as entradas dadas. Entradas
	// duplicadas em (loja, ativo) dentro do lote: a última vence.
	ReplaceAll(entries []*entity.InventoryEntry) error
	// Lookup devolve ativo -> quantidade para a loja, ou mapa vazio.
	Lookup(storeSimpleName string) (map[string]int64, error)
	// Keys devolve as chaves de loja distintas em ordem lexical (a ordem
	// garante desempate determinístico no casamento aproximado).
	Keys() ([]string, error)
	// Clear esvazia o inventário inicial.
	Clear() error
}
