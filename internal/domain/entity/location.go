package entity

import "strings"

// LocationClass classifica um local pelo prefixo do rótulo: lojas começam com
// o marcador "LOJA"; todo o resto é tratado como CD. A classe decide qual
// tabela de regras contábeis se aplica no replay.
type LocationClass string

const (
	ClassWarehouse LocationClass = "cd"
	ClassStore     LocationClass = "loja"
)

// StorePrefix é o marcador fixo dos rótulos de loja.
const StorePrefix = "LOJA"

// WarehousePrefix é o prefixo dos rótulos de CD (usado nos filtros de listagem).
const WarehousePrefix = "CD"

// IsStore indica se o rótulo pertence a uma loja.
func IsStore(label string) bool {
	return strings.HasPrefix(label, StorePrefix)
}

// ClassOf devolve a classe contábil do rótulo.
func ClassOf(label string) LocationClass {
	if IsStore(label) {
		return ClassStore
	}
	return ClassWarehouse
}

// PrefixFor devolve o prefixo de rótulo usado para filtrar locais da classe.
func PrefixFor(class LocationClass) string {
	if class == ClassStore {
		return StorePrefix + " "
	}
	return WarehousePrefix + " "
}

// ParseLocationClass aceita "loja" ou "cd" (query string da API).
func ParseLocationClass(s string) (LocationClass, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "loja":
		return ClassStore, true
	case "cd":
		return ClassWarehouse, true
	}
	return "", false
}
