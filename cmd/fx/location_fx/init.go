package location_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"smartinclusion/internal/repositories"
	"smartinclusion/internal/services"
)

var Module = fx.Provide(
	provideLocationService, provideLocationRepo)

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideLocationService(locationRepo repositories.LocationRepository, accountRepo repositories.AccountRepository) services.LocationServiceInterface {
	return services.NewLocationService(locationRepo, accountRepo)
}
