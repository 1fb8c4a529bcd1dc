package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"smartinclusion/internal/repositories"
	"smartinclusion/internal/services"
	"smartinclusion/pkg/config"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, cfg *config.Config) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, cfg.JWTSecret)
}
