package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// ProductSvcFacade manages the product catalogue.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, actor string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)
}
