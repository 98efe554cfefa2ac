package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockledger/pkg/app"
	"github.com/ghuser/stockledger/services/sales/application/handlers"
	appsvcs "github.com/ghuser/stockledger/services/sales/application/services"
)

// SaleRoutes registers sales endpoints on the provided chi router.
func SaleRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/sales", func(r chi.Router) {
			r.Post("/", handlers.NewPostSaleHandler(svcs).Execute)
			r.Get("/", handlers.NewGetSalesHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetSaleHandler(svcs).Execute)
		})
	})
}
