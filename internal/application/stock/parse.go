package stock

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formatos de data aceitos na ingestão: o legado brasileiro (dia primeiro) e
// ISO. A hora é descartada; toda data vira meia-noite UTC.
var dateFormats = []string{
	"02/01/2006",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

// parseDate resolve a data de um movimento; erro se nenhum formato casar.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("data ausente")
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", s)
}

// parseQuantity interpreta a quantidade textual dos arquivos legados
// ("10", "10,0", "1.234"). O valor precisa ser inteiro após o parse; não há
// coerção silenciosa de lixo para zero.
func parseQuantity(s string, allowNegative bool) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("quantidade ausente")
	}
	// vírgula decimal brasileira: "1.234,5" -> "1234.5"
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("quantidade inválida: %q", s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("quantidade não inteira: %q", s)
	}
	if !allowNegative && d.IsNegative() {
		return 0, fmt.Errorf("quantidade negativa: %q", s)
	}
	return d.IntPart(), nil
}
