package postgres

import (
	"context"
	"fmt"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, batch_id, guia, transacao, origem, destino, tipo, rti, nota_fiscal, quantidade, data, seq`

// MovementRepo implementação do ledger sobre PostgreSQL (usável com pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// InsertBatch persiste o lote; o seq BIGSERIAL atribui o contador de ingestão
// em ordem de inserção.
func (r *MovementRepo) InsertBatch(movements []*entity.Movement) error {
	query := `
		INSERT INTO movimentos (id, batch_id, guia, transacao, origem, destino, tipo, rti, nota_fiscal, quantidade, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING seq`
	for _, m := range movements {
		err := r.q.QueryRow(context.Background(), query,
			m.ID, m.BatchID, m.Guia, m.Transacao, m.Origem, m.Destino,
			m.Tipo, m.RTI, m.NotaFiscal, m.Quantidade, m.Data,
		).Scan(&m.Seq)
		if err != nil {
			return fmt.Errorf("insert movimento: %w", err)
		}
	}
	return nil
}

// ListAll devolve todo o ledger em ordem (data asc, seq asc).
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimentos ORDER BY data ASC, seq ASC`
	return r.list(query)
}

// ListByLocation devolve os movimentos em que o local é ponta, em ordem
// (data asc, seq asc).
func (r *MovementRepo) ListByLocation(label string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimentos
		WHERE origem = $1 OR destino = $1
		ORDER BY data ASC, seq ASC`
	return r.list(query, label)
}

// HistoryByLocation devolve os mesmos movimentos em ordem de data descendente.
func (r *MovementRepo) HistoryByLocation(label string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimentos
		WHERE origem = $1 OR destino = $1
		ORDER BY data DESC, seq DESC`
	return r.list(query, label)
}

// DistinctLocations lista os rótulos distintos da classe, em ordem lexical.
// A classe é decidida pelo prefixo LOJA, espelhando entity.ClassOf.
func (r *MovementRepo) DistinctLocations(class entity.LocationClass) ([]string, error) {
	cond := `NOT (local LIKE 'LOJA%')`
	if class == entity.ClassStore {
		cond = `local LIKE 'LOJA%'`
	}
	query := fmt.Sprintf(`
		SELECT DISTINCT local FROM (
			SELECT origem AS local FROM movimentos WHERE origem <> ''
			UNION
			SELECT destino AS local FROM movimentos WHERE destino <> ''
		) locais
		WHERE %s
		ORDER BY local ASC`, cond)

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("distinct locais: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scan local: %w", err)
		}
		out = append(out, label)
	}
	return out, rows.Err()
}

// Clear esvazia o ledger.
func (r *MovementRepo) Clear() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM movimentos`); err != nil {
		return fmt.Errorf("clear movimentos: %w", err)
	}
	return nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.BatchID, &m.Guia, &m.Transacao, &m.Origem, &m.Destino,
			&m.Tipo, &m.RTI, &m.NotaFiscal, &m.Quantidade, &m.Data, &m.Seq); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
