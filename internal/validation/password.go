package validation

import "strings"

const (
	passwordMinLength = 8
	passwordSymbols   = "@$!%*?&"

	msgPasswordPattern = "Sua senha deve conter ao menos uma letra maiúscula, um número e um dos símbolos: (@$!%*?&)."
	msgPasswordLength  = "A sua senha deve conter no mínimo 8 caracteres."
)

// ValidatePassword exige minuscula, mayuscula, digito y simbolo de
// passwordSymbols, sin otros caracteres, y al menos 8 caracteres.
// El patron se evalua antes que el largo.
func ValidatePassword(password string) error {
	if !matchesStrongPattern(password) {
		return &PasswordValidationError{Message: msgPasswordPattern}
	}
	if len(password) < passwordMinLength {
		return &PasswordValidationError{Message: msgPasswordLength}
	}
	return nil
}

func matchesStrongPattern(password string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}
