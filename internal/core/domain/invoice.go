package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceIssued    InvoiceStatus = "ISSUED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice is an issued bill. Status only changes through ApplyPayment and Cancel.
type Invoice struct {
	InvoiceID    string          `json:"invoiceID"`
	Number       string          `json:"number"`
	ClientID     string          `json:"clientID"`
	IssueDate    time.Time       `json:"issueDate"`
	DueDate      time.Time       `json:"dueDate"`
	PaymentDate  *time.Time      `json:"paymentDate,omitempty"`
	Status       InvoiceStatus   `json:"status"`
	TaxRate      decimal.Decimal `json:"taxRate"`      // percent, e.g. 20
	DiscountRate decimal.Decimal `json:"discountRate"` // percent, applied after tax
	Notes        string          `json:"notes"`
	Lines        []LineItem      `json:"lines"`
	AuditFields
}

// IsOverdue reports whether an unpaid invoice is past its due date on the given day.
func (i Invoice) IsOverdue(now time.Time) bool {
	return i.Status == InvoiceIssued && now.After(i.DueDate)
}

// ApplyPayment returns a copy of inv marked as paid on paidOn.
func ApplyPayment(inv Invoice, paidOn time.Time) (Invoice, error) {
	switch inv.Status {
	case InvoicePaid:
		return inv, fmt.Errorf("%w: invoice %s is already paid", apperrors.ErrInvalidTransition, inv.Number)
	case InvoiceCancelled:
		return inv, fmt.Errorf("%w: invoice %s is cancelled", apperrors.ErrInvalidTransition, inv.Number)
	}
	if paidOn.IsZero() {
		return inv, fmt.Errorf("%w: payment date is required", apperrors.ErrValidation)
	}
	if truncateDay(paidOn).Before(truncateDay(inv.IssueDate)) {
		return inv, fmt.Errorf("%w: payment date precedes issue date", apperrors.ErrValidation)
	}

	out := inv
	out.Lines = append([]LineItem(nil), inv.Lines...)
	out.PaymentDate = &paidOn
	out.Status = InvoicePaid
	return out, nil
}

// Cancel returns a copy of inv marked as cancelled. Paid invoices cannot be cancelled.
func Cancel(inv Invoice) (Invoice, error) {
	if inv.Status != InvoiceIssued {
		return inv, fmt.Errorf("%w: cannot cancel invoice %s in status %s", apperrors.ErrInvalidTransition, inv.Number, inv.Status)
	}
	out := inv
	out.Lines = append([]LineItem(nil), inv.Lines...)
	out.Status = InvoiceCancelled
	return out, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
