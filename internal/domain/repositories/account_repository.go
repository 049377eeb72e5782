package repositories

import (
	"context"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
)

// AccountRepository define a interface para persistência de contas
type AccountRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	FindByID(ctx context.Context, id string) (*entities.Account, error)
	FindByEmail(ctx context.Context, email string) (*entities.Account, error)
	Update(ctx context.Context, account *entities.Account) error
	// Delete remove a conta permanentemente (moderação de admin)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters AccountFilters) ([]*entities.Account, error)
}

// AccountFilters contém filtros para listagem de contas
type AccountFilters struct {
	Role     *entities.Role
	Page     int // Página (começa em 1); zerado junto com PageSize retorna tudo
	PageSize int // Itens por página; limites vêm da configuração
}
