package contact_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lexia/internal/repositories"
	"lexia/internal/services"
)

var Module = fx.Provide(
	provideContactService, provideContactRepo)

func provideContactRepo(db *gorm.DB) repositories.ContactRepository {
	return repositories.NewContactRepository(db)
}

func provideContactService(contactRepo repositories.ContactRepository) services.ContactServiceInterface {
	return services.NewContactService(contactRepo)
}
