package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/invoicing"
	"github.com/SscSPs/invoicing_app/internal/utils/validation"
	"github.com/google/uuid"
)

type enterpriseService struct {
	BaseService
	enterpriseRepo portsrepo.EnterpriseRepositoryFacade
}

// NewEnterpriseService creates a new service for the issuing company.
func NewEnterpriseService(enterpriseRepo portsrepo.EnterpriseRepositoryFacade) portssvc.EnterpriseSvcFacade {
	return &enterpriseService{enterpriseRepo: enterpriseRepo}
}

var _ portssvc.EnterpriseSvcFacade = (*enterpriseService)(nil)

func (s *enterpriseService) GetEnterprise(ctx context.Context) (*domain.Enterprise, error) {
	enterprise, err := s.enterpriseRepo.FindEnterprise(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get enterprise in service: %w", err)
	}
	return enterprise, nil
}

func (s *enterpriseService) UpdateEnterprise(ctx context.Context, req dto.UpdateEnterpriseRequest, actor string) (*domain.Enterprise, error) {
	now := s.now()

	current, err := s.enterpriseRepo.FindEnterprise(ctx)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		current = &domain.Enterprise{
			EnterpriseID: uuid.NewString(),
			Sequence:     domain.InvoiceNumberState{NextSequence: 1},
			SequenceYear: now.Year(),
			AuditFields:  domain.AuditFields{CreatedAt: now, CreatedBy: actor},
		}
		s.LogInfo(ctx, "Setting up enterprise for the first time")
	case err != nil:
		return nil, fmt.Errorf("failed to load enterprise for update: %w", err)
	}

	updated := *current
	updated.Name = strings.TrimSpace(req.Name)
	updated.Address = strings.TrimSpace(req.Address)
	updated.Email = strings.TrimSpace(req.Email)
	updated.Phone = strings.TrimSpace(req.Phone)
	updated.SIRET = strings.TrimSpace(req.SIRET)
	updated.VATNumber = strings.TrimSpace(req.VATNumber)
	updated.IBAN = strings.TrimSpace(req.IBAN)
	updated.BIC = strings.TrimSpace(req.BIC)
	updated.Sequence.Prefix = strings.TrimSpace(req.InvoicePrefix)
	updated.Touch(actor, now)

	if err := validateEnterprise(updated); err != nil {
		return nil, err
	}

	if err := s.enterpriseRepo.SaveEnterprise(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to save enterprise")
		return nil, fmt.Errorf("failed to update enterprise in service: %w", err)
	}
	return &updated, nil
}

func (s *enterpriseService) ResetSequence(ctx context.Context, actor string) (*domain.Enterprise, error) {
	enterprise, err := s.enterpriseRepo.FindEnterprise(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load enterprise for sequence reset: %w", err)
	}

	now := s.now()
	updated := *enterprise
	updated.Sequence = invoicing.ResetAnnualSequence(enterprise.Sequence)
	updated.SequenceYear = now.Year()
	updated.Touch(actor, now)

	if err := s.enterpriseRepo.UpdateSequence(ctx, updated.Sequence, updated.SequenceYear, actor); err != nil {
		s.LogError(ctx, err, "Failed to reset invoice sequence")
		return nil, fmt.Errorf("failed to reset invoice sequence: %w", err)
	}

	s.LogInfo(ctx, "Invoice sequence reset",
		slog.Int("previous_next_sequence", enterprise.Sequence.NextSequence),
		slog.Int("sequence_year", updated.SequenceYear))
	return &updated, nil
}

func validateEnterprise(e domain.Enterprise) error {
	if e.Name == "" {
		return fmt.Errorf("%w: enterprise name is required", apperrors.ErrValidation)
	}
	if e.SIRET != "" && !validation.IsValidTaxID(e.SIRET) {
		return fmt.Errorf("%w: invalid SIRET %q", apperrors.ErrValidation, e.SIRET)
	}
	if e.VATNumber != "" && !validation.IsValidVATNumber(e.VATNumber) {
		return fmt.Errorf("%w: invalid VAT number %q", apperrors.ErrValidation, e.VATNumber)
	}
	if e.IBAN != "" && !validation.IsValidIBAN(e.IBAN) {
		return fmt.Errorf("%w: invalid IBAN", apperrors.ErrValidation)
	}
	return nil
}
