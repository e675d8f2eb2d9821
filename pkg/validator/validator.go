package validator

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Validate decimals by numeric value, so required rejects an explicit
	// zero the same way it rejects an absent field.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return &CustomValidator{
		validator: v,
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		value, _ := d.Float64()
		return value
	}
	return nil
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatDetalhes flattens validation failures into a single deterministic
// string for the detalhes field of an error response.
func (cv *CustomValidator) FormatDetalhes(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages = append(messages, field+" é obrigatório")
		case "min":
			messages = append(messages, field+" deve ter no mínimo "+e.Param()+" caracteres")
		case "gt":
			messages = append(messages, field+" deve ser maior que "+e.Param())
		case "gte":
			messages = append(messages, field+" deve ser maior ou igual a "+e.Param())
		default:
			messages = append(messages, field+" é inválido")
		}
	}
	sort.Strings(messages)
	return strings.Join(messages, "; ")
}
