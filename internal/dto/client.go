package dto

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a new client.
// A private individual has no company name and must have a contact name.
type CreateClientRequest struct {
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName" binding:"required_without=CompanyName"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	SIRET       string `json:"siret" binding:"omitempty,siret"`
	VATNumber   string `json:"vatNumber" binding:"omitempty,frvat"`
	IBAN        string `json:"iban" binding:"omitempty,iban"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateClientRequest struct {
	CompanyName *string `json:"companyName"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	SIRET       *string `json:"siret" binding:"omitempty,siret"`
	VATNumber   *string `json:"vatNumber" binding:"omitempty,frvat"`
	IBAN        *string `json:"iban" binding:"omitempty,iban"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	CompanyName   string    `json:"companyName"`
	ContactName   string    `json:"contactName"`
	DisplayName   string    `json:"displayName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	SIRET         string    `json:"siret"`
	VATNumber     string    `json:"vatNumber"`
	IBAN          string    `json:"iban"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		CompanyName:   c.CompanyName,
		ContactName:   c.ContactName,
		DisplayName:   c.DisplayName(),
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		SIRET:         c.SIRET,
		VATNumber:     c.VATNumber,
		IBAN:          c.IBAN,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToListClientResponse converts a slice of domain.Client to a slice of ClientResponse DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
