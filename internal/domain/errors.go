package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrEmptyBatch   = errors.New("lote vazio")
	ErrUnauthorized = errors.New("não autorizado")
	ErrForbidden    = errors.New("acesso negado")
)

// RowError descreve a falha de uma linha específica de um lote de ingestão.
// Index é o índice original da linha no lote recebido.
type RowError struct {
	Index  int    `json:"index"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// Error implementa error.
func (e RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("linha %d, campo %s: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("linha %d: %s", e.Index, e.Reason)
}

// BatchError agrega as falhas de validação de um lote de movimentos.
// A política do ledger é tudo-ou-nada: qualquer RowError rejeita o lote inteiro.
type BatchError struct {
	Rows []RowError
}

// Error implementa error.
func (e *BatchError) Error() string {
	msgs := make([]string, 0, len(e.Rows))
	for _, r := range e.Rows {
		msgs = append(msgs, r.Error())
	}
	return "lote rejeitado: " + strings.Join(msgs, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *BatchError) Unwrap() error { return ErrInvalidInput }
