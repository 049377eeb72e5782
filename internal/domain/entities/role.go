package entities

import "strings"

// Role representa o papel de uma conta no sistema
type Role string

const (
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	return r == RoleSeller || r == RoleAdmin
}

// ClassifyRole determina o role de uma conta no momento do registro.
// O único admin do sistema é identificado pelo email configurado
// (comparação case-insensitive); todos os demais são vendedores.
func ClassifyRole(email, adminEmail string) Role {
	if adminEmail == "" {
		return RoleSeller
	}
	if strings.EqualFold(strings.TrimSpace(email), strings.TrimSpace(adminEmail)) {
		return RoleAdmin
	}
	return RoleSeller
}
