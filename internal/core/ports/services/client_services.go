package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, actor string) (*domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, actor string) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
