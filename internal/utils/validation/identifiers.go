// Package validation holds the checksum and format checks for French business
// identifiers and bank accounts, plus the allowed VAT rate set.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

const siretLength = 14

// minIBANLength is the shortest IBAN accepted (Norway, 15 characters).
const minIBANLength = 15

var vatNumberPattern = regexp.MustCompile(`^FR[0-9A-Z]{2}[0-9]{9}$`)

// IsValidTaxID checks a SIRET: 14 digits once non-digits are dropped, and a
// Luhn checksum that is a multiple of 10.
func IsValidTaxID(s string) bool {
	digits := make([]byte, 0, siretLength)
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) != siretLength {
		return false
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

// IsValidVATNumber checks the shape of a French intracommunity VAT number:
// "FR", two digits or letters, nine digits. The key is not verified.
func IsValidVATNumber(s string) bool {
	return vatNumberPattern.MatchString(compact(s))
}

// IsValidIBAN runs the ISO 13616 mod-97 check.
func IsValidIBAN(s string) bool {
	iban := compact(s)
	if len(iban) < minIBANLength {
		return false
	}

	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			v := int(r-'A') + 10
			remainder = (remainder*10 + v/10) % 97
			remainder = (remainder*10 + v%10) % 97
		default:
			return false
		}
	}
	return remainder == 1
}

// compact uppercases s and removes every whitespace rune.
func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}
