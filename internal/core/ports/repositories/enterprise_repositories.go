package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// EnterpriseRepositoryFacade reads and writes the single issuing company row.
type EnterpriseRepositoryFacade interface {
	// FindEnterprise returns apperrors.ErrNotFound until the company has been set up.
	FindEnterprise(ctx context.Context) (*domain.Enterprise, error)

	// SaveEnterprise upserts identity fields. The invoice counter is left alone on update.
	SaveEnterprise(ctx context.Context, enterprise domain.Enterprise) error

	// UpdateSequence overwrites the invoice counter.
	UpdateSequence(ctx context.Context, sequence domain.InvoiceNumberState, sequenceYear int, updatedBy string) error
}
