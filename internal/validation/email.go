package validation

import (
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const msgEmailInvalid = "Informe um endereço de e-mail válido."

// ValidateEmail verifica solo el formato; no consulta registros MX.
func ValidateEmail(email string) error {
	err := ozzo.Validate(strings.TrimSpace(email),
		ozzo.Required,
		is.Email,
	)
	if err != nil {
		return &EmailValidationError{Message: msgEmailInvalid}
	}
	return nil
}
