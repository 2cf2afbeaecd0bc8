package dto

// MovementRowRequest é uma linha do upload de movimentos. Os nomes seguem as
// colunas do arquivo legado (Guia, Transação, LOCAL Origem, LOCAL Destino,
// Tipo Movimento, RTI, Nota Fiscal, Quant., Data). Quantidade e data chegam
// como texto e são validadas na ingestão.
type MovementRowRequest struct {
	Guia          string `json:"guia"`
	Transacao     string `json:"transacao"`
	LocalOrigem   string `json:"local_origem"`
	LocalDestino  string `json:"local_destino"`
	TipoMovimento string `json:"tipo_movimento"`
	RTI           string `json:"rti"`
	NotaFiscal    string `json:"nota_fiscal"`
	Quantidade    string `json:"quantidade"`
	Data          string `json:"data"` // DD/MM/YYYY ou YYYY-MM-DD
}

// UploadMovementsRequest lote de movimentos (tudo-ou-nada).
type UploadMovementsRequest struct {
	Movimentos []MovementRowRequest `json:"movimentos"`
}

// UploadMovementsResponse resultado do append no ledger.
type UploadMovementsResponse struct {
	Inseridos int    `json:"inseridos"`
	BatchID   string `json:"batch_id"`
}

// InventoryRowRequest é uma linha do upload de inventário inicial
// (loja_nome, ativo, quantidade do arquivo legado).
type InventoryRowRequest struct {
	LojaNome   string `json:"loja_nome"`
	Ativo      string `json:"ativo"`
	Quantidade string `json:"quantidade"`
}

// UploadInventoryRequest carga substitutiva do inventário inicial.
type UploadInventoryRequest struct {
	Linhas []InventoryRowRequest `json:"linhas"`
}

// UploadInventoryResponse resultado por linha (melhor esforço).
type UploadInventoryResponse struct {
	Inseridos int            `json:"inseridos"`
	Falhas    []FailedRowDTO `json:"falhas"`
}

// MovementDTO movimento na resposta de histórico e evolução.
type MovementDTO struct {
	Data          string `json:"data"`
	TipoMovimento string `json:"tipo_movimento"`
	RTI           string `json:"rti"`
	LocalOrigem   string `json:"local_origem"`
	LocalDestino  string `json:"local_destino"`
	Quantidade    int64  `json:"quantidade"`
	Guia          string `json:"guia,omitempty"`
	NotaFiscal    string `json:"nota_fiscal,omitempty"`
}

// LocationStockDTO saldo agregado de um local.
type LocationStockDTO struct {
	Local  string           `json:"local"`
	Tipo   string           `json:"tipo"` // "cd" | "loja"
	Saldos map[string]int64 `json:"saldos"`
}

// StockResponse projeção completa (local -> ativo -> saldo).
type StockResponse struct {
	Locais []LocationStockDTO `json:"locais"`
}

// EvolutionEntryDTO snapshot de um dia com movimento.
type EvolutionEntryDTO struct {
	Data       string           `json:"data"`
	Abertura   map[string]int64 `json:"abertura"`
	Movimentos []MovementDTO    `json:"movimentos"`
	Fechamento map[string]int64 `json:"fechamento"`
}

// EvolutionResponse evolução dia a dia de um local.
type EvolutionResponse struct {
	Local    string              `json:"local"`
	Entradas []EvolutionEntryDTO `json:"entradas"`
}

// FlowResponse resumo de fluxo de um local (tipo -> ativo -> total).
type FlowResponse struct {
	Local      string                      `json:"local"`
	Entradas   map[string]map[string]int64 `json:"entradas"`
	Saidas     map[string]map[string]int64 `json:"saidas"`
	Devolucoes map[string]map[string]int64 `json:"devolucoes"`
}

// LocationsResponse rótulos distintos de uma classe de local.
type LocationsResponse struct {
	Tipo   string   `json:"tipo"`
	Locais []string `json:"locais"`
}

// ResolveResponse resultado do casamento aproximado de um rótulo.
type ResolveResponse struct {
	Local       string `json:"local"`
	NomeSimples string `json:"nome_simples,omitempty"`
	Encontrado  bool   `json:"encontrado"`
}

// HistoryResponse histórico de movimentos de um local (data desc).
type HistoryResponse struct {
	Local      string        `json:"local"`
	Movimentos []MovementDTO `json:"movimentos"`
}
