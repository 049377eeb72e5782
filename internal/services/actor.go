package services

import "github.com/statusmarket/statusmarket-backend/internal/domain/entities"

// Actor identifica o chamador autenticado de uma operação de serviço
type Actor struct {
	ID   string
	Role entities.Role
}

// IsAdmin verifica se o chamador é admin
func (a Actor) IsAdmin() bool {
	return a.Role == entities.RoleAdmin
}

// canModerate verifica se o chamador pode alterar o recurso de ownerID
func (a Actor) canModerate(ownerID string) bool {
	return a.ID == ownerID || a.IsAdmin()
}
