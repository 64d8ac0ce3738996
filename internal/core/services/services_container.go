package services

import (
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Country:    NewCountryService(repos.CountryRepo),
		Comment:    NewCommentService(repos.CommentRepo),
		Auth:       NewAuthService(cfg, repos.AdminRepo),
		Conversion: NewConversionService(repos.CountryRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CountrySvcFacade = (*countryService)(nil)
	_ portssvc.CommentSvcFacade = (*commentService)(nil)
	_ portssvc.AuthSvc          = (*authService)(nil)
	_ portssvc.ConversionSvc    = (*conversionService)(nil)
)
