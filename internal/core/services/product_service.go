package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/validation"
	"github.com/google/uuid"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	taxRates    validation.TaxRateSet
}

// NewProductService creates a new product catalogue service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, taxRates validation.TaxRateSet) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo, taxRates: taxRates}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, actor string) (*domain.Product, error) {
	designation := strings.TrimSpace(req.Designation)
	if designation == "" {
		return nil, fmt.Errorf("%w: product designation is required", apperrors.ErrValidation)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: product unit price must not be negative", apperrors.ErrValidation)
	}
	if !s.taxRates.IsValidTaxRate(req.TaxRate) {
		return nil, fmt.Errorf("%w: tax rate %s is not one of %s", apperrors.ErrValidation, req.TaxRate, s.taxRates)
	}

	now := s.now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Designation: designation,
		Reference:   strings.TrimSpace(req.Reference),
		UnitPrice:   req.UnitPrice,
		TaxRate:     req.TaxRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("designation", designation))
		return nil, fmt.Errorf("failed to create product in service: %w", err)
	}
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s in service: %w", productID, err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	limit, offset := normalizePage(params.Limit, params.Offset)
	products, err := s.productRepo.ListProducts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products in service: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}
