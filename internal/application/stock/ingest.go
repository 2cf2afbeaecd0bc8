package stock

import (
	"context"

	"github.com/google/uuid"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	"github.com/esc4n0rx/hbtracker-api/internal/domain"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/repository"
	"github.com/esc4n0rx/hbtracker-api/internal/domain/rti"
)

// IngestUseCase faz o append de lotes de movimentos no ledger.
// Política tudo-ou-nada: todas as linhas são validadas antes de qualquer
// escrita; uma única linha inválida rejeita o lote inteiro. (O inventário
// inicial tem a política oposta — ver InventoryUseCase.)
type IngestUseCase struct {
	txRunner TxRunner
}

// NewIngestUseCase constrói o caso de uso.
func NewIngestUseCase(txRunner TxRunner) *IngestUseCase {
	return &IngestUseCase{txRunner: txRunner}
}

// AppendBatch valida e persiste um lote de movimentos. Devolve a quantidade
// inserida e o ID da transação de ingestão. Lote vazio -> domain.ErrEmptyBatch;
// qualquer linha inválida -> *domain.BatchError com todas as falhas.
func (uc *IngestUseCase) AppendBatch(ctx context.Context, rows []dto.MovementRowRequest) (int, string, error) {
	if len(rows) == 0 {
		return 0, "", domain.ErrEmptyBatch
	}

	batchID := uuid.New().String()
	movements := make([]*entity.Movement, 0, len(rows))
	var rowErrs []domain.RowError

	for i, row := range rows {
		m, errs := buildMovement(i, row)
		if len(errs) > 0 {
			rowErrs = append(rowErrs, errs...)
			continue
		}
		m.ID = uuid.New().String()
		m.BatchID = batchID
		movements = append(movements, m)
	}

	if len(rowErrs) > 0 {
		return 0, "", &domain.BatchError{Rows: rowErrs}
	}

	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, _ repository.InventoryRepository) error {
		return movRepo.InsertBatch(movements)
	})
	if err != nil {
		return 0, "", err
	}
	return len(movements), batchID, nil
}

// buildMovement valida uma linha e monta a entidade. Campos obrigatórios:
// tipo de movimento (enum fechado), data e quantidade; pelo menos um entre
// origem e destino. RTI vazio vira o sentinela N/A.
func buildMovement(idx int, row dto.MovementRowRequest) (*entity.Movement, []domain.RowError) {
	var errs []domain.RowError

	tipo, err := entity.ParseMovementType(row.TipoMovimento)
	if err != nil {
		errs = append(errs, domain.RowError{Index: idx, Field: "tipo_movimento", Reason: err.Error()})
	}

	data, err := parseDate(row.Data)
	if err != nil {
		errs = append(errs, domain.RowError{Index: idx, Field: "data", Reason: err.Error()})
	}

	qty, err := parseQuantity(row.Quantidade, false)
	if err != nil {
		errs = append(errs, domain.RowError{Index: idx, Field: "quantidade", Reason: err.Error()})
	}

	if row.LocalOrigem == "" && row.LocalDestino == "" {
		errs = append(errs, domain.RowError{Index: idx, Field: "local", Reason: "origem e destino ausentes"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &entity.Movement{
		Guia:       row.Guia,
		Transacao:  row.Transacao,
		Origem:     row.LocalOrigem,
		Destino:    row.LocalDestino,
		Tipo:       tipo,
		RTI:        rti.NormalizeAsset(row.RTI),
		NotaFiscal: row.NotaFiscal,
		Quantidade: qty,
		Data:       data,
	}, nil
}

// ClearLedger esvazia o ledger de movimentos. Irreversível.
func (uc *IngestUseCase) ClearLedger(ctx context.Context) error {
	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, _ repository.InventoryRepository) error {
		return movRepo.Clear()
	})
}
