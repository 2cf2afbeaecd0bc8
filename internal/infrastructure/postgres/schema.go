package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema cria as tabelas se ainda não existem. O seq BIGSERIAL de
// movimentos é o contador de ingestão usado como desempate na ordenação.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS movimentos (
			id            UUID PRIMARY KEY,
			batch_id      UUID NOT NULL,
			guia          TEXT NOT NULL DEFAULT '',
			transacao     TEXT NOT NULL DEFAULT '',
			origem        TEXT NOT NULL DEFAULT '',
			destino       TEXT NOT NULL DEFAULT '',
			tipo          TEXT NOT NULL,
			rti           TEXT NOT NULL,
			nota_fiscal   TEXT NOT NULL DEFAULT '',
			quantidade    BIGINT NOT NULL,
			data          DATE NOT NULL,
			seq           BIGSERIAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_movimentos_ordem ON movimentos (data, seq)`,
		`CREATE INDEX IF NOT EXISTS idx_movimentos_origem ON movimentos (origem)`,
		`CREATE INDEX IF NOT EXISTS idx_movimentos_destino ON movimentos (destino)`,
		`CREATE TABLE IF NOT EXISTS inventario_inicial (
			loja_nome_simples  TEXT NOT NULL,
			ativo              TEXT NOT NULL,
			quantidade         BIGINT NOT NULL,
			data_inventario    DATE NOT NULL,
			PRIMARY KEY (loja_nome_simples, ativo)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
