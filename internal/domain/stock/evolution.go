package stock

import (
	"time"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
)

// DailyEntry é o snapshot de um dia com movimento para um local: saldo de
// abertura, movimentos aplicados na ordem de ingestão e saldo de fechamento.
// Invariante: Closing da entrada k é igual a Opening da entrada k+1.
type DailyEntry struct {
	Date      time.Time
	Opening   Balance
	Movements []*entity.Movement
	Closing   Balance
}

// Evolution reconstrói a evolução dia a dia do saldo de um local. movs deve
// conter apenas movimentos do local, em ordem (data asc, seq asc). opening é
// o estado inicial (baseline resolvido para lojas, vazio para CDs). Datas sem
// movimento não geram entrada: o último fechamento conhecido persiste.
func Evolution(location string, movs []*entity.Movement, opening Balance, baselineDate time.Time) []DailyEntry {
	isStore := entity.IsStore(location)
	running := opening.Clone()

	var entries []DailyEntry
	var cur *DailyEntry

	for _, m := range movs {
		if isStore && m.Data.Before(baselineDate) {
			// movimentos de loja anteriores ao corte do inventário são ignorados
			continue
		}
		day := truncateToDay(m.Data)
		if cur == nil || !cur.Date.Equal(day) {
			if cur != nil {
				cur.Closing = running.Clone()
				entries = append(entries, *cur)
			}
			cur = &DailyEntry{Date: day, Opening: running.Clone()}
		}
		apply(running, m, location)
		cur.Movements = append(cur.Movements, m)
	}
	if cur != nil {
		cur.Closing = running.Clone()
		entries = append(entries, *cur)
	}
	return entries
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
