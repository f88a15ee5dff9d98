package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Struct tags understood once RegisterBindingValidators has run.
const (
	TagSIRET     = "siret"
	TagVATNumber = "frvat"
	TagIBAN      = "iban"
	TagTaxRate   = "taxrate"
)

// RegisterBindingValidators installs the identifier checks as struct tags on v
// and teaches it to read decimal.Decimal fields as strings.
func RegisterBindingValidators(v *validator.Validate, rates TaxRateSet) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validators := map[string]validator.Func{
		TagSIRET:     stringCheck(IsValidTaxID),
		TagVATNumber: stringCheck(IsValidVATNumber),
		TagIBAN:      stringCheck(IsValidIBAN),
		TagTaxRate: func(fl validator.FieldLevel) bool {
			rate, err := decimal.NewFromString(fl.Field().String())
			return err == nil && rates.IsValidTaxRate(rate)
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validator: %w", tag, err)
		}
	}
	return nil
}

func stringCheck(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return check(fl.Field().String())
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}
