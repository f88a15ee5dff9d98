package domain

// Enterprise is the issuing company. There is exactly one.
type Enterprise struct {
	EnterpriseID string `json:"enterpriseID"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	SIRET        string `json:"siret"`
	VATNumber    string `json:"vatNumber"`
	IBAN         string `json:"iban"`
	BIC          string `json:"bic"`

	// Sequence is the invoice counter; SequenceYear is the calendar year it counts for.
	Sequence     InvoiceNumberState `json:"sequence"`
	SequenceYear int                `json:"sequenceYear"`
	AuditFields
}
