package http

import (
	"github.com/gofiber/fiber/v2"

	appinventory "github.com/nadirsultanli/order-management-system-sub011/internal/application/inventory"
	apptransfer "github.com/nadirsultanli/order-management-system-sub011/internal/application/transfer"
	"github.com/nadirsultanli/order-management-system-sub011/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	TransferUC     *apptransfer.TransferUseCase
	InventoryQuery *appinventory.QueryUseCase
	ReceiveStock   *appinventory.ReceiveStockUseCase
	LocationUC     *usecase.LocationUseCase
	ProductUC      *usecase.ProductUseCase
	JWTSecret      string
}

// Router registers the API routes. Everything under /api requires a Bearer
// token; the actor it names ends up in the movement ledger.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Transfers: the engine's three operations. Executing a transfer is
	// restricted to warehouse staff; the dry-run is open to any actor.
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/warehouse", RequireRole("admin", "warehouse"), transferHandler.TransferBetweenWarehouses)
	transfers.Post("/truck", RequireRole("admin", "warehouse"), transferHandler.TransferWarehouseToTruck)
	transfers.Post("/validate", transferHandler.ValidateTransfer)

	// Inventory: balances, ledger, receipts
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryQuery, deps.ReceiveStock)
	inv.Get("/balances", inventoryHandler.ListBalances)
	inv.Get("/movements", inventoryHandler.ListMovements)
	inv.Get("/movements/reference/:id", inventoryHandler.GetMovementsByReference)
	inv.Post("/receipts", RequireRole("admin", "warehouse"), inventoryHandler.ReceiveStock)

	// Locations (warehouses and trucks)
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", RequireRole("admin"), locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Patch("/:id/active", RequireRole("admin"), locationHandler.SetActive)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole("admin"), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
}
