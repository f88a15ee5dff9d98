package invoicing

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UnknownClientInitials is used when a client has neither a company nor a personal name.
const UnknownClientInitials = "XX"

// GenerateInvoiceNumber formats the next invoice number as
// "{MM}/{YY}-{NNNN}-{INITIALS}" (preceded by state.Prefix when set) and
// returns it together with the advanced counter. The input state is not
// modified; persisting the returned state is the caller's job.
//
// A NextSequence below 1 (an unset counter) is issued as 1, so the returned
// state is 2. NNNN is a minimum width: sequences above 9999 print all digits.
func GenerateInvoiceNumber(state domain.InvoiceNumberState, clientInitials string, issueDate time.Time) (string, domain.InvoiceNumberState) {
	seq := state.NextSequence
	if seq < 1 {
		seq = 1
	}

	number := fmt.Sprintf("%s%02d/%02d-%04d-%s",
		state.Prefix,
		int(issueDate.Month()),
		issueDate.Year()%100,
		seq,
		normalizeInitials(clientInitials),
	)

	next := state
	next.NextSequence = seq + 1
	return number, next
}

// ResetAnnualSequence restarts the counter at 1. Deciding when a new year
// starts is left to the caller.
func ResetAnnualSequence(state domain.InvoiceNumberState) domain.InvoiceNumberState {
	state.NextSequence = 1
	return state
}

// ClientInitials derives the initials used in invoice numbers. With a company
// name it is the company's first letter followed by the first letter of the
// personal name, if any. Without one it is the personal name's first letter,
// or UnknownClientInitials when both are empty.
func ClientInitials(companyName, personalName string) string {
	company := strings.TrimSpace(companyName)
	person := strings.TrimSpace(personalName)

	if company != "" {
		return firstLetter(company) + firstLetter(person)
	}
	if person != "" {
		return firstLetter(person)
	}
	return UnknownClientInitials
}

// firstLetter returns the first letter of s, stripped of diacritics and
// uppercased, or "" when s holds no A-Z letter.
func firstLetter(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	for _, r := range folded {
		r = unicode.ToUpper(r)
		if r >= 'A' && r <= 'Z' {
			return string(r)
		}
	}
	return ""
}

func normalizeInitials(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}
