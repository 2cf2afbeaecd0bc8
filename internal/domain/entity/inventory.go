package entity

import "time"

// InventoryEntry é uma linha do inventário inicial: a contagem conhecida de um
// ativo em uma loja na data do baseline. No máximo uma entrada por
// (loja_nome_simples, ativo); reingestão substitui o valor anterior.
type InventoryEntry struct {
	LojaNomeSimples string // normalizado, maiúsculas
	Ativo           string // código RTI normalizado
	Quantidade      int64
	DataInventario  time.Time
}
