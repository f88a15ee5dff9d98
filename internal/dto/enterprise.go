package dto

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// UpdateEnterpriseRequest replaces the issuing company's identity.
type UpdateEnterpriseRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	SIRET         string `json:"siret" binding:"omitempty,siret"`
	VATNumber     string `json:"vatNumber" binding:"omitempty,frvat"`
	IBAN          string `json:"iban" binding:"omitempty,iban"`
	BIC           string `json:"bic" binding:"omitempty,bic"`
	InvoicePrefix string `json:"invoicePrefix" binding:"max=8"`
}

// EnterpriseResponse defines the data returned for the issuing company.
type EnterpriseResponse struct {
	EnterpriseID      string `json:"enterpriseID"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	SIRET             string `json:"siret"`
	VATNumber         string `json:"vatNumber"`
	IBAN              string `json:"iban"`
	BIC               string `json:"bic"`
	InvoicePrefix     string `json:"invoicePrefix"`
	NextInvoiceNumber int    `json:"nextInvoiceNumber"`
	InvoiceNumberYear int    `json:"invoiceNumberYear"`
}

// ToEnterpriseResponse converts a domain.Enterprise to EnterpriseResponse DTO
func ToEnterpriseResponse(e *domain.Enterprise) EnterpriseResponse {
	return EnterpriseResponse{
		EnterpriseID:      e.EnterpriseID,
		Name:              e.Name,
		Address:           e.Address,
		Email:             e.Email,
		Phone:             e.Phone,
		SIRET:             e.SIRET,
		VATNumber:         e.VATNumber,
		IBAN:              e.IBAN,
		BIC:               e.BIC,
		InvoicePrefix:     e.Sequence.Prefix,
		NextInvoiceNumber: e.Sequence.NextSequence,
		InvoiceNumberYear: e.SequenceYear,
	}
}
