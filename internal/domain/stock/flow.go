package stock

import (
	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
)

// FlowSummary agrega entradas e saídas de um local por tipo de movimento e
// ativo. Devoluções de entrega são dobradas sob Entrega como ajuste negativo,
// preservando o comportamento do fluxo visual original.
type FlowSummary struct {
	Inflows     map[entity.MovementType]Balance
	Outflows    map[entity.MovementType]Balance
	Devolutions map[entity.MovementType]Balance
}

// Flow categoriza os movimentos de um local em entradas, saídas e devoluções.
// movs deve conter apenas movimentos em que o local é origem ou destino.
func Flow(location string, movs []*entity.Movement) FlowSummary {
	sum := FlowSummary{
		Inflows:     make(map[entity.MovementType]Balance),
		Outflows:    make(map[entity.MovementType]Balance),
		Devolutions: make(map[entity.MovementType]Balance),
	}

	add := func(table map[entity.MovementType]Balance, tipo entity.MovementType, rti string, delta int64) {
		bal, ok := table[tipo]
		if !ok {
			bal = make(Balance)
			table[tipo] = bal
		}
		bal[rti] += delta
	}

	for _, m := range movs {
		rti := m.RTI
		if rti == "" {
			rti = "N/A"
		}
		switch {
		case m.Destino == location:
			if m.Tipo == entity.MovementDevolucao {
				add(sum.Devolutions, entity.MovementEntrega, rti, -m.Quantidade)
			} else {
				add(sum.Inflows, m.Tipo, rti, m.Quantidade)
			}
		case m.Origem == location:
			if m.Tipo == entity.MovementDevolucao {
				// devolução na origem é uma saída que anula uma entrada
				add(sum.Outflows, entity.MovementEntrega, rti, -m.Quantidade)
			} else {
				add(sum.Outflows, m.Tipo, rti, m.Quantidade)
			}
		}
	}
	return sum
}
