package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/warehouse/pkg/app"
	"github.com/ghuser/warehouse/pkg/auth"
	"github.com/ghuser/warehouse/services/warehouse/application/handlers"
	appsvcs "github.com/ghuser/warehouse/services/warehouse/application/services"
)

// WarehouseRoutes registers warehouse ledger endpoints on the provided chi
// router. Mutating routes require a session; reads are open.
func WarehouseRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/warehouse", func(r chi.Router) {
		// Reads: no session required.
		r.Get("/items/{itemID}", handlers.NewGetItemHandler(svcs).Execute)
		r.Get("/items/{itemID}/instances/{instanceNumber}", handlers.NewGetInstanceHandler(svcs).Execute)
		r.Get("/owners", handlers.NewListOwnersHandler(svcs).Execute)

		// Mutations: session required; the owner-set check happens in the service.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
			r.Put("/items/{itemID}", handlers.NewPutItemHandler(svcs).Execute)
			r.Post("/items/{itemID}/freeze", handlers.NewFreezeItemHandler(svcs).Execute)
			r.Post("/items/{itemID}/instances", handlers.NewAssignItemHandler(svcs).Execute)
			r.Post("/items/{itemID}/instances/assign-with-inventory", handlers.NewAssignWithInventoryHandler(svcs).Execute)
			r.Put("/items/{itemID}/instances/{instanceNumber}", handlers.NewUpdateInstanceHandler(svcs).Execute)
			r.Post("/items/{itemID}/instances/{instanceNumber}/transfer", handlers.NewTransferInstanceHandler(svcs).Execute)
			r.Post("/owners", handlers.NewAddOwnerHandler(svcs).Execute)
			r.Delete("/owners/{address}", handlers.NewRemoveOwnerHandler(svcs).Execute)
		})
	})
}

// InventoryRoutes registers user inventory endpoints on the provided chi
// router. The inventory ledger is ungated; no session is required.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/inventory", func(r chi.Router) {
		r.Post("/entries", handlers.NewAssignEntryHandler(svcs).Execute)
		r.Put("/entries", handlers.NewUpdateEntryHandler(svcs).Execute)
		r.Get("/{userID}/items/{itemID}/{instanceNumber}", handlers.NewGetEntryHandler(svcs).Execute)
	})
}
