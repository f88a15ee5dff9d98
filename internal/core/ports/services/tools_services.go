package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// ToolsService exposes the stateless checks and calculations.
type ToolsService interface {
	ValidateIdentifier(ctx context.Context, req dto.ValidateIdentifierRequest) (dto.ValidateIdentifierResponse, error)
	PreviewTotals(ctx context.Context, req dto.PreviewTotalsRequest) (domain.InvoiceTotals, error)
}
