package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
