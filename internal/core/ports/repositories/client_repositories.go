package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client, or apperrors.ErrNotFound.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves clients ordered by display name.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
	// DeleteClient fails with apperrors.ErrValidation while invoices reference the client.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
