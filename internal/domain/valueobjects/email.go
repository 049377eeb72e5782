package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos.
// O valor é normalizado para minúsculas, o que também garante a
// unicidade case-insensitive exigida para a atribuição de role.
type Email struct {
	value string
}

// NewEmail cria um novo Email validado e normalizado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !isValidEmail(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// isValidEmail valida o formato do email
func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}
