package services

import (
	"github.com/ghuser/warehouse/pkg/app"
	"github.com/ghuser/warehouse/pkg/cache"
	"github.com/ghuser/warehouse/services/warehouse/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the warehouse
// bounded context. It wires the ledger state machine with its infrastructure
// implementations.
type Services struct {
	Warehouse *WarehouseService
	Inventory *InventoryService
}

// New wires all warehouse application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	store := postgres.NewLedgerStore(a.Db, a.EventBus)
	itemCache := cache.NewItemCache(a.Redis)
	return &Services{
		Warehouse: NewWarehouseService(store, itemCache, nil),
		Inventory: NewInventoryService(store),
	}
}
