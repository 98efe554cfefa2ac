package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockledger/pkg/app"
	"github.com/ghuser/stockledger/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/stockledger/services/inventory/application/services"
)

// ItemRoutes registers inventory endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Post("/delete", handlers.NewBulkDeleteItemsHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetItemHandler(svcs).Execute)
				r.Put("/", handlers.NewPutItemHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
				r.Patch("/quantity", handlers.NewPatchQuantityHandler(svcs).Execute)
			})
		})
	})
}
