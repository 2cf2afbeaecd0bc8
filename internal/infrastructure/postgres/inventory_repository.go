package postgres

import (
	"context"
	"fmt"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementação do inventário inicial sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// ReplaceAll limpa o inventário e insere as entradas. O upsert em
// (loja, ativo) garante que duplicadas no lote deixem a última vencer.
func (r *InventoryRepo) ReplaceAll(entries []*entity.InventoryEntry) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM inventario_inicial`); err != nil {
		return fmt.Errorf("clear inventario: %w", err)
	}
	query := `
		INSERT INTO inventario_inicial (loja_nome_simples, ativo, quantidade, data_inventario)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (loja_nome_simples, ativo) DO UPDATE
		SET quantidade = EXCLUDED.quantidade, data_inventario = EXCLUDED.data_inventario`
	for _, e := range entries {
		if _, err := r.q.Exec(ctx, query, e.LojaNomeSimples, e.Ativo, e.Quantidade, e.DataInventario); err != nil {
			return fmt.Errorf("insert inventario: %w", err)
		}
	}
	return nil
}

// Lookup devolve ativo -> quantidade da loja, ou mapa vazio.
func (r *InventoryRepo) Lookup(storeSimpleName string) (map[string]int64, error) {
	query := `SELECT ativo, quantidade FROM inventario_inicial WHERE loja_nome_simples = $1`
	rows, err := r.q.Query(context.Background(), query, storeSimpleName)
	if err != nil {
		return nil, fmt.Errorf("lookup inventario: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var asset string
		var qty int64
		if err := rows.Scan(&asset, &qty); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		out[asset] = qty
	}
	return out, rows.Err()
}

// Keys devolve as chaves de loja distintas em ordem lexical.
func (r *InventoryRepo) Keys() ([]string, error) {
	query := `SELECT DISTINCT loja_nome_simples FROM inventario_inicial ORDER BY loja_nome_simples ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("keys inventario: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan chave: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// Clear esvazia o inventário inicial.
func (r *InventoryRepo) Clear() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM inventario_inicial`); err != nil {
		return fmt.Errorf("clear inventario: %w", err)
	}
	return nil
}
