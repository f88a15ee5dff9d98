package dto

import "github.com/shopspring/decimal"

// Identifier kinds accepted by the validation tool.
const (
	IdentifierSIRET     = "siret"
	IdentifierVATNumber = "vat"
	IdentifierIBAN      = "iban"
	IdentifierTaxRate   = "taxrate"
)

// ValidateIdentifierRequest asks whether a raw value is a valid identifier of the given kind.
type ValidateIdentifierRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=siret vat iban taxrate"`
	Value string `json:"value" binding:"required"`
}

// ValidateIdentifierResponse reports the check result.
type ValidateIdentifierResponse struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

// PreviewTotalsRequest computes totals without storing anything. Rates are not range-checked.
type PreviewTotalsRequest struct {
	TaxRate      decimal.Decimal         `json:"taxRate"`
	DiscountRate decimal.Decimal         `json:"discountRate"`
	Lines        []CreateLineItemRequest `json:"lines"`
}
