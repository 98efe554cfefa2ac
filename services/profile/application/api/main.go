package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockledger/pkg/app"
	"github.com/ghuser/stockledger/services/profile/application/handlers"
	appsvcs "github.com/ghuser/stockledger/services/profile/application/services"
)

// ProfileRoutes registers profile endpoints on the provided chi router.
func ProfileRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", handlers.NewGetProfileHandler(svcs).Execute)
			r.Post("/upgrade", handlers.NewUpgradePlanHandler(svcs).Execute)
			r.Put("/theme", handlers.NewUpdateThemeHandler(svcs).Execute)
		})
	})
}
