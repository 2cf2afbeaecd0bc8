package stock

import (
	"time"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
)

// Projection mapeia local -> (ativo -> saldo). Derivada, recalculada a cada
// consulta.
type Projection map[string]Balance

// BaselineFunc devolve o saldo de abertura resolvido para um local de loja.
// Lojas sem baseline resolvido devolvem mapa vazio (degradação para zero).
type BaselineFunc func(location string) Balance

// Project faz o replay completo do ledger e devolve o saldo agregado de cada
// local distinto. movs deve vir em ordem (data asc, seq asc). Lojas são
// semeadas pelo baseline e ignoram movimentos estritamente anteriores à data
// de corte; CDs partem de zero e não têm corte.
func Project(movs []*entity.Movement, baselineFor BaselineFunc, baselineDate time.Time) Projection {
	proj := make(Projection)

	seed := func(location string) Balance {
		if bal, ok := proj[location]; ok {
			return bal
		}
		var bal Balance
		if entity.IsStore(location) && baselineFor != nil {
			bal = baselineFor(location).Clone()
		} else {
			bal = make(Balance)
		}
		proj[location] = bal
		return bal
	}

	for _, m := range movs {
		for i, location := range []string{m.Destino, m.Origem} {
			if location == "" || (i == 1 && location == m.Destino) {
				// apply já trata as duas pontas; não reaplicar quando origem == destino
				continue
			}
			bal := seed(location)
			if entity.IsStore(location) && m.Data.Before(baselineDate) {
				continue
			}
			apply(bal, m, location)
		}
	}
	return proj
}
