package handlers

import (
	"fmt"

	"github.com/SscSPs/invoicing_app/cmd/docs"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
	"github.com/SscSPs/invoicing_app/internal/utils/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerBindingValidators(cfg.AllowedTaxRates); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// registerBindingValidators adds the identifier and tax rate tags to gin's validator.
func registerBindingValidators(rates validation.TaxRateSet) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return validation.RegisterBindingValidators(v, rates)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, service *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.ActorMiddleware())

	registerClientRoutes(v1, service.Client)
	registerProductRoutes(v1, service.Product)
	registerEnterpriseRoutes(v1, service.Enterprise)
	registerInvoiceRoutes(v1, service.Invoice)
	registerStatisticsRoutes(v1, service.Statistics)
	registerToolsRoutes(v1, service.Tools)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
