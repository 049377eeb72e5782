package services

import (
	"context"
	"fmt"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/errors"
	"github.com/statusmarket/statusmarket-backend/internal/domain/ports"
	"github.com/statusmarket/statusmarket-backend/internal/domain/repositories"
)

// ListingService contém a lógica de negócio para anúncios
type ListingService struct {
	listings repositories.ListingRepository
	images   ports.ImageStorage
	folder   string
	logger   ports.Logger
}

// NewListingService cria um novo ListingService
func NewListingService(
	listings repositories.ListingRepository,
	images ports.ImageStorage,
	folder string,
	logger ports.Logger,
) *ListingService {
	return &ListingService{
		listings: listings,
		images:   images,
		folder:   folder,
		logger:   logger,
	}
}

// CreateListingInput representa os dados para publicar um anúncio
type CreateListingInput struct {
	Title       string
	Price       float64
	Currency    entities.Currency
	Category    string
	Description string
	Location    string
	Images      []string
}

// Create publica um novo anúncio do vendedor. Cada imagem é resolvida
// pelo serviço de hospedagem antes da persistência; uma falha no upload
// aborta a operação sem gravar a linha.
func (s *ListingService) Create(ctx context.Context, ownerID string, input CreateListingInput) (*entities.Listing, error) {
	listing := &entities.Listing{
		Title:       input.Title,
		Price:       input.Price,
		Currency:    input.Currency,
		Category:    input.Category,
		Description: input.Description,
		Location:    input.Location,
		Images:      input.Images,
		IsActive:    true,
		OwnerID:     ownerID,
	}

	if err := listing.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidListingData, err)
	}

	urls, err := s.resolveImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}
	listing.Images = urls

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}

	s.logger.Info("listing created", "listing_id", listing.ID, "owner_id", ownerID)

	// Recarregar com o dono para a resposta
	return s.Get(ctx, listing.ID)
}

// Get busca um anúncio por ID, sem filtrar por is_active
func (s *ListingService) Get(ctx context.Context, id string) (*entities.Listing, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.ErrListingNotFound
	}
	return listing, nil
}

// UpdateListingInput representa a atualização parcial de um anúncio.
// Images nil preserva a galeria existente; quando presente, todas as
// imagens são re-resolvidas pelo serviço de hospedagem.
type UpdateListingInput struct {
	Title       *string
	Price       *float64
	Currency    *entities.Currency
	Category    *string
	Description *string
	Location    *string
	Images      []string
}

// Update aplica uma atualização parcial. Apenas o dono ou um admin
// podem alterar o anúncio.
func (s *ListingService) Update(ctx context.Context, id string, actor Actor, input UpdateListingInput) (*entities.Listing, error) {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.canModerate(listing.OwnerID) {
		return nil, errors.ErrForbidden
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Price != nil {
		listing.Price = *input.Price
	}
	if input.Currency != nil {
		listing.Currency = *input.Currency
	}
	if input.Category != nil {
		listing.Category = *input.Category
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if input.Images != nil {
		listing.Images = input.Images
	}

	if err := listing.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidListingData, err)
	}

	if input.Images != nil {
		urls, err := s.resolveImages(ctx, input.Images)
		if err != nil {
			return nil, err
		}
		listing.Images = urls
	}

	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Retire aposenta um anúncio (soft delete do dono ou admin). A linha
// permanece e a página de detalhe continua acessível.
func (s *ListingService) Retire(ctx context.Context, id string, actor Actor) error {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if !actor.canModerate(listing.OwnerID) {
		return errors.ErrForbidden
	}

	return s.listings.Retire(ctx, id)
}

// Purge remove um anúncio permanentemente (moderação de admin)
func (s *ListingService) Purge(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.listings.Purge(ctx, id); err != nil {
		return err
	}

	s.logger.Info("listing purged", "listing_id", id)
	return nil
}

// List lista anúncios ativos aplicando os filtros de busca
func (s *ListingService) List(ctx context.Context, filters repositories.ListingFilters) ([]*entities.Listing, error) {
	return s.listings.List(ctx, filters)
}

// Mine lista os anúncios ativos do próprio vendedor
func (s *ListingService) Mine(ctx context.Context, ownerID string, filters repositories.ListingFilters) ([]*entities.Listing, error) {
	filters.OwnerID = &ownerID
	return s.listings.List(ctx, filters)
}

// resolveImages passa cada imagem pelo serviço de hospedagem,
// preservando a ordem enviada pelo vendedor
func (s *ListingService) resolveImages(ctx context.Context, images []string) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, image := range images {
		url, err := s.images.Upload(ctx, image, s.folder+"/listings")
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
