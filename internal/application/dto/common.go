package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FailedRowDTO falha de uma linha de ingestão, com o índice original no lote.
type FailedRowDTO struct {
	Index  int    `json:"index"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// BatchErrorResponse corpo de erro de um lote rejeitado, com as falhas por
// linha.
type BatchErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Falhas  []FailedRowDTO `json:"falhas"`
}
