package services

import (
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/utils/validation"
)

// Settings carries the configuration values services depend on.
type Settings struct {
	TaxRates        validation.TaxRateSet
	PaymentTermDays int
	TotalsCacheSize int
}

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(repos *portsrepo.RepositoryProvider, settings Settings) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Client:     NewClientService(repos.ClientRepo),
		Product:    NewProductService(repos.ProductRepo, settings.TaxRates),
		Enterprise: NewEnterpriseService(repos.EnterpriseRepo),
		Invoice: NewInvoiceService(
			repos.InvoiceRepo,
			repos.ClientRepo,
			repos.ProductRepo,
			WithTaxRates(settings.TaxRates),
			WithPaymentTermDays(settings.PaymentTermDays),
			WithTotalsCacheSize(settings.TotalsCacheSize),
		),
		Statistics: NewStatisticsService(repos.InvoiceRepo, repos.ClientRepo),
		Tools:      NewToolsService(settings.TaxRates),
	}
}
