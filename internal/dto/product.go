package dto

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a catalogue product.
type CreateProductRequest struct {
	Designation string          `json:"designation" binding:"required"`
	Reference   string          `json:"reference"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	TaxRate     decimal.Decimal `json:"taxRate" binding:"taxrate"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID   string `json:"productID"`
	Designation string `json:"designation"`
	Reference   string `json:"reference"`
	UnitPrice   string `json:"unitPrice"`
	TaxRate     string `json:"taxRate"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Designation: p.Designation,
		Reference:   p.Reference,
		UnitPrice:   utils.FormatAmount(p.UnitPrice),
		TaxRate:     p.TaxRate.String(),
	}
}

// ToListProductResponse converts a slice of domain.Product to ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
