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

// clientService manages billed customers.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, actor string) (*domain.Client, error) {
	now := s.now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		CompanyName: strings.TrimSpace(req.CompanyName),
		ContactName: strings.TrimSpace(req.ContactName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		SIRET:       strings.TrimSpace(req.SIRET),
		VATNumber:   strings.TrimSpace(req.VATNumber),
		IBAN:        strings.TrimSpace(req.IBAN),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := validateClient(client); err != nil {
		s.LogDebug(ctx, "Rejected client", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to create client in service: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s in service: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, error) {
	limit, offset := normalizePage(params.Limit, params.Offset)
	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients in service: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, actor string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s for update: %w", clientID, err)
	}

	updated := *client
	applyString(&updated.CompanyName, req.CompanyName)
	applyString(&updated.ContactName, req.ContactName)
	applyString(&updated.Email, req.Email)
	applyString(&updated.Phone, req.Phone)
	applyString(&updated.Address, req.Address)
	applyString(&updated.SIRET, req.SIRET)
	applyString(&updated.VATNumber, req.VATNumber)
	applyString(&updated.IBAN, req.IBAN)
	updated.Touch(actor, s.now())

	if err := validateClient(updated); err != nil {
		return nil, err
	}

	if err := s.clientRepo.UpdateClient(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client in service: %w", err)
	}
	return &updated, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		return fmt.Errorf("failed to delete client %s in service: %w", clientID, err)
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}

// validateClient checks naming and, when present, the business identifiers.
func validateClient(c domain.Client) error {
	if c.CompanyName == "" && c.ContactName == "" {
		return fmt.Errorf("%w: a company name or a contact name is required", apperrors.ErrValidation)
	}
	if c.SIRET != "" && !validation.IsValidTaxID(c.SIRET) {
		return fmt.Errorf("%w: invalid SIRET %q", apperrors.ErrValidation, c.SIRET)
	}
	if c.VATNumber != "" && !validation.IsValidVATNumber(c.VATNumber) {
		return fmt.Errorf("%w: invalid VAT number %q", apperrors.ErrValidation, c.VATNumber)
	}
	if c.IBAN != "" && !validation.IsValidIBAN(c.IBAN) {
		return fmt.Errorf("%w: invalid IBAN", apperrors.ErrValidation)
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
