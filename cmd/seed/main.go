// seed carrega os arquivos CSV legados (exportados em ISO-8859-1, separados
// por ';') na API: movimentos para /api/movements/upload e inventário inicial
// para /api/inventory/upload.
//
// Uso:
//
//	go run ./cmd/seed -api http://localhost:8080 -token <jwt> movimentos.csv
//	go run ./cmd/seed -api http://localhost:8080 -token <jwt> -inventario inventario.csv
//
// Movimentos: Guia;Transacao;LOCAL Origem;LOCAL Destino;Tipo Movimento;RTI;Nota Fiscal;Quant.;Data
// Inventário: loja_nome;ativo;quantidade
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "URL base da API")
	token := flag.String("token", "", "Bearer token (obrigatório)")
	inventario := flag.Bool("inventario", false, "o arquivo é inventário inicial, não movimentos")
	flag.Parse()

	if flag.NArg() < 1 || *token == "" {
		fmt.Fprintln(os.Stderr, "uso: seed -api <url> -token <jwt> [-inventario] <arquivo.csv>")
		os.Exit(1)
	}

	records, err := readLatin1CSV(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ler CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sem linhas de dados")
		os.Exit(1)
	}
	rows := records[1:] // pular cabeçalho

	var path string
	var body any
	if *inventario {
		path = "/api/inventory/upload"
		body = buildInventoryRequest(rows)
	} else {
		path = "/api/movements/upload"
		body = buildMovementsRequest(rows)
	}

	if err := post(*apiURL+path, *token, body); err != nil {
		fmt.Fprintf(os.Stderr, "upload: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Enviadas %d linhas para %s\n", len(rows), path)
}

// readLatin1CSV lê o arquivo ';'-separado decodificando ISO-8859-1 para UTF-8.
func readLatin1CSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func buildMovementsRequest(rows [][]string) dto.UploadMovementsRequest {
	var req dto.UploadMovementsRequest
	for _, rec := range rows {
		req.Movimentos = append(req.Movimentos, dto.MovementRowRequest{
			Guia:          field(rec, 0),
			Transacao:     field(rec, 1),
			LocalOrigem:   field(rec, 2),
			LocalDestino:  field(rec, 3),
			TipoMovimento: field(rec, 4),
			RTI:           field(rec, 5),
			NotaFiscal:    field(rec, 6),
			Quantidade:    field(rec, 7),
			Data:          field(rec, 8),
		})
	}
	return req
}

func buildInventoryRequest(rows [][]string) dto.UploadInventoryRequest {
	var req dto.UploadInventoryRequest
	for _, rec := range rows {
		req.Linhas = append(req.Linhas, dto.InventoryRowRequest{
			LojaNome:   field(rec, 0),
			Ativo:      field(rec, 1),
			Quantidade: field(rec, 2),
		})
	}
	return req
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func post(url, token string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(out))
	}
	fmt.Println(string(out))
	return nil
}
