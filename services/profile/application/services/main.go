package services

import (
	"github.com/ghuser/stockledger/pkg/app"
	"github.com/ghuser/stockledger/services/profile/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Profile *ProfileService
}

// New wires all profile application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Profile: NewProfileService(postgres.NewProfileRepository(a.Db)),
	}
}
