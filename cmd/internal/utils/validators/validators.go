package validators

import (
	"brdocs/cmd/internal/utils/document"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// Register wires every custom tag of this package into validate.
func Register(validate *validator.Validate) error {
	tags := map[string]validator.Func{
		"taxid":   TaxID,
		"nodupes": NoDupes,
	}

	for tag, fn := range tags {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// TaxID accepts either a valid CPF or a valid CNPJ.
func TaxID(fl validator.FieldLevel) bool {
	val, ok := stringField(fl)
	return ok && document.IsValid(val)
}

func NoDupes(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'nodupes' applied to non-slice type: %s\n", slice.Kind().String())
		return false
	}

	length := slice.Len()
	seen := make(map[any]bool, length)
	for i := 0; i < length; i++ {
		val := slice.Index(i).Interface()
		if _, exists := seen[val]; exists {
			return false
		}
		seen[val] = true
	}
	return true
}

// stringField refuses anything that is not a string, non-string input is never a document.
func stringField(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}
