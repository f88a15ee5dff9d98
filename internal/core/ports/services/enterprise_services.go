package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// EnterpriseSvcFacade manages the issuing company and its invoice counter.
type EnterpriseSvcFacade interface {
	GetEnterprise(ctx context.Context) (*domain.Enterprise, error)
	UpdateEnterprise(ctx context.Context, req dto.UpdateEnterpriseRequest, actor string) (*domain.Enterprise, error)
	// ResetSequence restarts invoice numbering at 1 for the current year.
	ResetSequence(ctx context.Context, actor string) (*domain.Enterprise, error)
}
