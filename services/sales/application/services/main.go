package services

import (
	"github.com/ghuser/stockledger/pkg/app"
	"github.com/ghuser/stockledger/services/sales/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Sales *SalesService
}

// New wires all sales application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewSaleRepository(a.Db, a.EventBus)
	return &Services{
		Sales: NewSalesService(repo),
	}
}
