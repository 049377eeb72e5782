package repositories

import (
	"context"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
)

// ListingRepository define a interface para persistência de anúncios.
// Retire e Purge são operações distintas de propósito: o vendedor
// aposenta o próprio anúncio (tombstone), o admin remove a linha.
type ListingRepository interface {
	Create(ctx context.Context, listing *entities.Listing) error
	// FindByID carrega o anúncio com o dono, sem filtrar por is_active
	// (a página de detalhe funciona mesmo para anúncios aposentados)
	FindByID(ctx context.Context, id string) (*entities.Listing, error)
	Update(ctx context.Context, listing *entities.Listing) error
	// Retire marca is_active=false mantendo a linha
	Retire(ctx context.Context, id string) error
	// Purge remove a linha permanentemente
	Purge(ctx context.Context, id string) error
	List(ctx context.Context, filters ListingFilters) ([]*entities.Listing, error)
}
