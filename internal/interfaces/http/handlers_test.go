package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/esc4n0rx/hbtracker-api/internal/application/auth"
	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	appstock "github.com/esc4n0rx/hbtracker-api/internal/application/stock"
	"github.com/esc4n0rx/hbtracker-api/internal/infrastructure/memory"
	apphttp "github.com/esc4n0rx/hbtracker-api/internal/interfaces/http"
	"github.com/esc4n0rx/hbtracker-api/pkg/config"
	pkgjwt "github.com/esc4n0rx/hbtracker-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: API completa sobre repositórios em memória
// ──────────────────────────────────────────────────────────────────────────────

var handlerBaseline = time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

func buildTestAPI(t *testing.T) *fiber.App {
	t.Helper()

	movRepo := memory.NewMovementRepository()
	invRepo := memory.NewInventoryRepository()
	tx := memory.NewTxRunner(movRepo, invRepo)
	resolver := appstock.NewResolver(invRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtCfg := config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer}
	adminCfg := config.AdminConfig{User: "admin", PasswordHash: string(hash)}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewUseCase(adminCfg, jwtCfg),
		IngestUC:    appstock.NewIngestUseCase(tx),
		InventoryUC: appstock.NewInventoryUseCase(tx, handlerBaseline, nil),
		QueryUC:     appstock.NewQueryUseCase(movRepo, resolver, handlerBaseline),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// tokenForRoleRaw gera um JWT com o papel dado, sem o prefixo Bearer.
func tokenForRoleRaw(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "leitor", role, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

// login faz o login do admin e devolve o token.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Usuario: "admin", Senha: "senha-forte"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.LoginResponse](t, resp)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidas(t *testing.T) {
	app := buildTestAPI(t)
	login(t, app)
}

func TestLogin_SenhaErrada(t *testing.T) {
	app := buildTestAPI(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Usuario: "admin", Senha: "errada"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_CamposObrigatorios(t *testing.T) {
	app := buildTestAPI(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRotasProtegidas_SemToken(t *testing.T) {
	app := buildTestAPI(t)
	resp := doJSON(t, app, http.MethodGet, "/api/stock", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Upload de movimentos
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadMovements_LoteValido(t *testing.T) {
	app := buildTestAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/movements/upload", token, dto.UploadMovementsRequest{
		Movimentos: []dto.MovementRowRequest{{
			LocalOrigem:   "CD SP",
			LocalDestino:  "LOJA F036 - Recreio A5",
			TipoMovimento: "Remessa",
			RTI:           "HB618",
			Quantidade:    "10",
			Data:          "10/06/2025",
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.UploadMovementsResponse](t, resp)
	assert.Equal(t, 1, out.Inseridos)
	assert.NotEmpty(t, out.BatchID)
}

func TestUploadMovements_LoteRejeitadoComFalhas(t *testing.T) {
	app := buildTestAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/movements/upload", token, dto.UploadMovementsRequest{
		Movimentos: []dto.MovementRowRequest{{
			LocalOrigem:   "CD SP",
			LocalDestino:  "LOJA A1 - Tijuca",
			TipoMovimento: "Empréstimo",
			RTI:           "HB618",
			Quantidade:    "10",
			Data:          "10/06/2025",
		}},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.BatchErrorResponse](t, resp)
	assert.Equal(t, "BATCH_REJECTED", out.Code)
	require.Len(t, out.Falhas, 1)
	assert.Equal(t, "tipo_movimento", out.Falhas[0].Field)
}

func TestUploadMovements_LoteVazio(t *testing.T) {
	app := buildTestAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/movements/upload", token, dto.UploadMovementsRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta de estoque de ponta a ponta
// ──────────────────────────────────────────────────────────────────────────────

func TestStockFlow_PontaAPonta(t *testing.T) {
	app := buildTestAPI(t)
	token := login(t, app)

	// inventário inicial
	resp := doJSON(t, app, http.MethodPost, "/api/inventory/upload", token, dto.UploadInventoryRequest{
		Linhas: []dto.InventoryRowRequest{{LojaNome: "LOJA F036 - Recreio A5", Ativo: "HB618", Quantidade: "50"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// movimento depois do corte
	resp = doJSON(t, app, http.MethodPost, "/api/movements/upload", token, dto.UploadMovementsRequest{
		Movimentos: []dto.MovementRowRequest{{
			LocalOrigem:   "CD SP",
			LocalDestino:  "LOJA F036 - Recreio A5",
			TipoMovimento: "Remessa",
			RTI:           "HB618",
			Quantidade:    "10",
			Data:          "10/06/2025",
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// projeção
	resp = doJSON(t, app, http.MethodGet, "/api/stock", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stockOut := decodeBody[dto.StockResponse](t, resp)

	var loja *dto.LocationStockDTO
	for i := range stockOut.Locais {
		if stockOut.Locais[i].Local == "LOJA F036 - Recreio A5" {
			loja = &stockOut.Locais[i]
		}
	}
	require.NotNil(t, loja)
	assert.Equal(t, int64(60), loja.Saldos["HB618"])

	// evolução
	resp = doJSON(t, app, http.MethodGet, "/api/stock/evolution?local=LOJA+F036+-+Recreio+A5", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	evoOut := decodeBody[dto.EvolutionResponse](t, resp)
	require.Len(t, evoOut.Entradas, 1)
	assert.Equal(t, int64(50), evoOut.Entradas[0].Abertura["HB618"])
	assert.Equal(t, int64(60), evoOut.Entradas[0].Fechamento["HB618"])
}

func TestEvolution_SemParametroLocal(t *testing.T) {
	app := buildTestAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/stock/evolution", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLocations_TipoInvalido(t *testing.T) {
	app := buildTestAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/locations?tipo=galpao", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventário: upload e limpeza
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadInventory_FalhasPorLinha(t *testing.T) {
	app := buildTestAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/upload", token, dto.UploadInventoryRequest{
		Linhas: []dto.InventoryRowRequest{
			{LojaNome: "LOJA F036 - Recreio A5", Ativo: "HB618", Quantidade: "50"},
			{LojaNome: "LOJA A1 - Tijuca", Ativo: "HB618", Quantidade: "abc"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.UploadInventoryResponse](t, resp)
	assert.Equal(t, 1, out.Inseridos)
	require.Len(t, out.Falhas, 1)
	assert.Equal(t, 1, out.Falhas[0].Index)
}

// As operações destrutivas exigem o papel admin do token.
func TestClear_ExigePapelAdmin(t *testing.T) {
	app := buildTestAPI(t)

	resp := doJSON(t, app, http.MethodDelete, "/api/movements", tokenForRoleRaw(t, "leitor"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/inventory", tokenForRoleRaw(t, "leitor"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestClearMovements_Admin(t *testing.T) {
	app := buildTestAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodDelete, "/api/movements", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
