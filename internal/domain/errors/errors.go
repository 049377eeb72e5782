package errors

import "errors"

// Business errors
// Nota: Estes são códigos estáveis usados nos mapeamentos dos handlers.
// As mensagens voltadas ao cliente vêm das chaves dedicadas em
// internal/infrastructure/i18n/locales/*.json, não destes códigos.
var (
	ErrAccountNotFound    = errors.New("error.account_not_found")
	ErrListingNotFound    = errors.New("error.listing_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrInvalidToken       = errors.New("error.invalid_token")
	ErrForbidden          = errors.New("error.forbidden")
	ErrSelfDeletion       = errors.New("error.self_deletion")
)

// Domain errors
var (
	ErrInvalidEmail       = errors.New("error.invalid_email")
	ErrInvalidListingData = errors.New("error.invalid_listing_data")
	ErrInvalidAccountData = errors.New("error.invalid_account_data")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
