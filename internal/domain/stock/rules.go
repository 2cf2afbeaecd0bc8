// Package stock é o motor de reconciliação: replay do ledger de movimentos
// para produzir saldos agregados, evolução diária e resumo de fluxo.
// As projeções são derivadas, nunca persistidas: cada consulta recalcula do
// zero na ordem (data, sequência de ingestão).
package stock

import (
	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
)

// Balance mapeia código de ativo (RTI) -> saldo corrente.
type Balance map[string]int64

// Clone devolve uma cópia profunda do saldo (snapshots de abertura/fechamento
// não podem compartilhar o mapa com o estado corrente).
func (b Balance) Clone() Balance {
	out := make(Balance, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Tabelas de regras contábeis. Fonte única de verdade sobre o efeito de cada
// tipo de movimento; combinações não listadas são no-ops deliberados.
//
// CD: saldo parte de zero.
var (
	warehouseInbound = map[entity.MovementType]struct{}{
		entity.MovementRegresso:      {},
		entity.MovementEntrega:       {},
		entity.MovementTransferencia: {},
	}
	warehouseOutbound = map[entity.MovementType]struct{}{
		entity.MovementRemessa:       {},
		entity.MovementRetorno:       {},
		entity.MovementTransferencia: {},
		entity.MovementDevolucao:     {},
	}
)

// Loja: saldo parte do inventário inicial resolvido; só Remessa entra e só
// Regresso sai.

// apply aplica o efeito do movimento m sobre o saldo do local dado, segundo a
// classe do local. Uma Transferencia com o mesmo CD nas duas pontas soma e
// subtrai, anulando-se.
func apply(bal Balance, m *entity.Movement, location string) {
	if entity.IsStore(location) {
		if m.Destino == location && m.Tipo == entity.MovementRemessa {
			bal[m.RTI] += m.Quantidade
		}
		if m.Origem == location && m.Tipo == entity.MovementRegresso {
			bal[m.RTI] -= m.Quantidade
		}
		return
	}
	if m.Destino == location {
		if _, ok := warehouseInbound[m.Tipo]; ok {
			bal[m.RTI] += m.Quantidade
		}
	}
	if m.Origem == location {
		if _, ok := warehouseOutbound[m.Tipo]; ok {
			bal[m.RTI] -= m.Quantidade
		}
	}
}
