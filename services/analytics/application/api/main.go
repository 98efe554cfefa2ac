package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockledger/pkg/app"
	"github.com/ghuser/stockledger/services/analytics/application/handlers"
	appsvcs "github.com/ghuser/stockledger/services/analytics/application/services"
)

// AnalyticsRoutes registers the read-only analytics endpoints on the provided chi router.
func AnalyticsRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", handlers.NewGetSummaryHandler(svcs).Execute)
			r.Get("/revenue", handlers.NewGetRevenueHandler(svcs).Execute)
			r.Get("/top-items", handlers.NewGetTopItemsHandler(svcs).Execute)
		})
	})
}
