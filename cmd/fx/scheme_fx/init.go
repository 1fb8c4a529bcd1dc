package scheme_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"smartinclusion/internal/repositories"
	"smartinclusion/internal/services"
)

var Module = fx.Provide(
	provideSchemeService, provideSchemeRepo)

func provideSchemeRepo(db *gorm.DB) repositories.SchemeRepository {
	return repositories.NewSchemeRepository(db)
}

func provideSchemeService(schemeRepo repositories.SchemeRepository) services.SchemeServiceInterface {
	return services.NewSchemeService(schemeRepo)
}
