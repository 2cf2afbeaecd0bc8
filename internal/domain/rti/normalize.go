// Package rti concentra a canonicalização de identificadores: códigos de
// ativo (RTI) e nomes simples de loja derivados do rótulo completo.
package rti

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/esc4n0rx/hbtracker-api/internal/domain/entity"
)

// UnknownAsset é o código sentinela para ativo ausente ou vazio.
const UnknownAsset = "N/A"

// siteCodeRe casa o código de site no início do rótulo ("F036", "A12").
var siteCodeRe = regexp.MustCompile(`^[A-Za-z][0-9]+`)

// NormalizeAsset canonicaliza um código de ativo: trim, maiúsculas e remoção
// de todo espaço interno ("hb 618" -> "HB618"). Entrada vazia vira UnknownAsset.
// Idempotente: NormalizeAsset(NormalizeAsset(x)) == NormalizeAsset(x).
func NormalizeAsset(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	if b.Len() == 0 {
		return UnknownAsset
	}
	return b.String()
}

// ExtractSimpleName deriva o nome simples da loja a partir do rótulo completo.
// "LOJA F036 - Recreio A5" -> "RECREIO A5". Se o rótulo contém o separador
// " - ", devolve o texto após o último separador; senão remove o marcador
// "LOJA" e um código de site no formato letra+dígitos, e põe em maiúsculas.
// Função total: no pior caso devolve o rótulo inteiro em maiúsculas.
func ExtractSimpleName(label string) string {
	s := strings.TrimSpace(label)
	if i := strings.LastIndex(s, " - "); i >= 0 {
		return strings.ToUpper(strings.TrimSpace(s[i+3:]))
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, entity.StorePrefix))
	s = strings.TrimSpace(siteCodeRe.ReplaceAllString(s, ""))
	return strings.ToUpper(s)
}
