package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/esc4n0rx/hbtracker-api/internal/application/auth"
	"github.com/esc4n0rx/hbtracker-api/internal/application/stock"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	IngestUC    *stock.IngestUseCase
	InventoryUC *stock.InventoryUseCase
	QueryUC     *stock.QueryUseCase
	JWTSecret   string
}

// Router registra as rotas da API. Leitura e upload exigem Bearer Token; as
// operações de limpeza exigem o papel admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(auth.RoleAdmin)

	stockHandler := NewStockHandler(deps.QueryUC)
	protected.Get("/stock", stockHandler.GetStock)
	protected.Get("/stock/evolution", stockHandler.GetEvolution)
	protected.Get("/stock/flow", stockHandler.GetFlow)
	protected.Get("/locations", stockHandler.GetLocations)
	protected.Get("/locations/resolve", stockHandler.Resolve)

	movementHandler := NewMovementHandler(deps.IngestUC, deps.QueryUC)
	protected.Get("/movements", movementHandler.History)
	protected.Post("/movements/upload", movementHandler.Upload)
	protected.Delete("/movements", admin, movementHandler.Clear)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	protected.Post("/inventory/upload", inventoryHandler.Upload)
	protected.Delete("/inventory", admin, inventoryHandler.Clear)
}
