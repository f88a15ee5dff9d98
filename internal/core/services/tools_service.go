package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/invoicing"
	"github.com/SscSPs/invoicing_app/internal/utils/validation"
	"github.com/shopspring/decimal"
)

type toolsService struct {
	BaseService
	taxRates validation.TaxRateSet
}

// NewToolsService creates the stateless identifier and totals helpers.
func NewToolsService(taxRates validation.TaxRateSet) portssvc.ToolsService {
	return &toolsService{taxRates: taxRates}
}

var _ portssvc.ToolsService = (*toolsService)(nil)

func (s *toolsService) ValidateIdentifier(ctx context.Context, req dto.ValidateIdentifierRequest) (dto.ValidateIdentifierResponse, error) {
	resp := dto.ValidateIdentifierResponse{Kind: req.Kind, Value: req.Value}

	switch strings.ToLower(req.Kind) {
	case dto.IdentifierSIRET:
		resp.Valid = validation.IsValidTaxID(req.Value)
	case dto.IdentifierVATNumber:
		resp.Valid = validation.IsValidVATNumber(req.Value)
	case dto.IdentifierIBAN:
		resp.Valid = validation.IsValidIBAN(req.Value)
	case dto.IdentifierTaxRate:
		rate, err := decimal.NewFromString(strings.TrimSpace(req.Value))
		resp.Valid = err == nil && s.taxRates.IsValidTaxRate(rate)
	default:
		return resp, fmt.Errorf("%w: unknown identifier kind %q", apperrors.ErrValidation, req.Kind)
	}

	s.LogDebug(ctx, "Identifier checked")
	return resp, nil
}

// PreviewTotals runs the calculator on ad-hoc lines. Lines and rates are taken as given.
func (s *toolsService) PreviewTotals(_ context.Context, req dto.PreviewTotalsRequest) (domain.InvoiceTotals, error) {
	lines := make([]domain.LineItem, len(req.Lines))
	for i, r := range req.Lines {
		lines[i] = domain.LineItem{
			Position:    i + 1,
			Designation: r.Designation,
			Quantity:    r.Quantity,
			UnitPrice:   r.Price(),
		}
	}
	return invoicing.ComputeTotals(lines, req.TaxRate, req.DiscountRate), nil
}
