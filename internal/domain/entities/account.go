package entities

import (
	"errors"
	"time"

	"github.com/statusmarket/statusmarket-backend/internal/domain/valueobjects"
)

// Account representa uma conta registrada (vendedor ou admin)
type Account struct {
	ID             string
	Name           string
	Email          valueobjects.Email
	PasswordHash   string
	WhatsappNumber string
	AvatarURL      *string
	Location       *string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin verifica se a conta é admin
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanModerate verifica se a conta pode alterar um anúncio de outra conta.
// Apenas o dono do anúncio ou um admin podem fazê-lo.
func (a *Account) CanModerate(ownerID string) bool {
	return a.ID == ownerID || a.IsAdmin()
}

// Validate valida regras de negócio da entidade Account
func (a *Account) Validate() error {
	if a.Email.String() == "" {
		return errors.New("email is required")
	}

	if len(a.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if len(a.WhatsappNumber) < 6 {
		return errors.New("whatsapp number must be at least 6 characters")
	}

	if !a.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
