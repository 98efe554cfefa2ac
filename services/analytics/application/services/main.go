package services

import (
	"github.com/ghuser/stockledger/pkg/app"
	"github.com/ghuser/stockledger/services/analytics/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Analytics *AnalyticsService
}

// New wires all analytics application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Analytics: NewAnalyticsService(postgres.NewReader(a.Db)),
	}
}
