// Package validation reune las reglas de validacion de campos de cuenta.
package validation

const (
	TypePasswordValidationError = "PasswordValidationError"
	TypeEmailValidationError    = "EmailValidationError"
)

// Error es un error de validacion corregible por el usuario. Type identifica
// la regla que fallo y viaja en la respuesta junto al mensaje.
type Error interface {
	error
	Type() string
}

type PasswordValidationError struct {
	Message string
}

func (e *PasswordValidationError) Error() string { return e.Message }

func (e *PasswordValidationError) Type() string { return TypePasswordValidationError }

type EmailValidationError struct {
	Message string
}

func (e *EmailValidationError) Error() string { return e.Message }

func (e *EmailValidationError) Type() string { return TypeEmailValidationError }
