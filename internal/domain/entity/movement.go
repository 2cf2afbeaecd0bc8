package entity

import (
	"fmt"
	"time"
)

// MovementType é o tipo fechado de movimento entre CDs e lojas.
// As tabelas de regras em internal/domain/stock são a única fonte de verdade
// sobre o efeito de cada tipo no saldo.
type MovementType string

const (
	MovementRemessa       MovementType = "Remessa"              // remessa CD -> loja
	MovementRegresso      MovementType = "Regresso"             // regresso loja -> CD
	MovementEntrega       MovementType = "Entrega"              // entrega entre CDs
	MovementTransferencia MovementType = "Transferencia"        // transferência CD -> CD
	MovementRetorno       MovementType = "Retorno"              // retorno de CD
	MovementDevolucao     MovementType = "Devolução de Entrega" // anula uma entrega
)

// movementTypes é o conjunto aceito na ingestão.
var movementTypes = map[MovementType]struct{}{
	MovementRemessa:       {},
	MovementRegresso:      {},
	MovementEntrega:       {},
	MovementTransferencia: {},
	MovementRetorno:       {},
	MovementDevolucao:     {},
}

// ParseMovementType valida a string contra o enum fechado.
func ParseMovementType(s string) (MovementType, error) {
	t := MovementType(s)
	if _, ok := movementTypes[t]; !ok {
		return "", fmt.Errorf("tipo de movimento desconhecido: %q", s)
	}
	return t, nil
}

// Movement é um registro imutável do ledger de movimentos.
// Seq é o contador de ingestão atribuído pelo repositório no append e serve
// de desempate determinístico para registros com a mesma data.
type Movement struct {
	ID         string
	BatchID    string // transação de ingestão que criou o registro
	Guia       string
	Transacao  string
	Origem     string
	Destino    string
	Tipo       MovementType
	RTI        string // código do ativo já normalizado
	NotaFiscal string
	Quantidade int64
	Data       time.Time
	Seq        int64
}
