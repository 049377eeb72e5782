package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/repositories"
)

// ListingRepository implementa repositories.ListingRepository
type ListingRepository struct {
	db  *gorm.DB
	pag Pagination
}

// NewListingRepository cria um novo ListingRepository
func NewListingRepository(db *gorm.DB, pag Pagination) repositories.ListingRepository {
	return &ListingRepository{db: db, pag: pag}
}

func (r *ListingRepository) Create(ctx context.Context, listing *entities.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	model := r.toModel(listing)
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*entities.Listing, error) {
	var model ListingModel

	// Sem filtro de is_active: a página de detalhe funciona mesmo
	// para anúncios aposentados alcançados por link direto
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ListingRepository) Update(ctx context.Context, listing *entities.Listing) error {
	listing.UpdatedAt = time.Now().UTC()
	model := r.toModel(listing)
	// Save com Owner nil não toca a tabela de contas
	model.Owner = nil
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *ListingRepository) Retire(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&ListingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC().Unix(),
		}).Error
}

func (r *ListingRepository) Purge(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&ListingModel{}).Error
}

func (r *ListingRepository) List(ctx context.Context, filters repositories.ListingFilters) ([]*entities.Listing, error) {
	var models []*ListingModel

	clause, args, err := CompileListingPredicate(filters.Predicate())
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Model(&ListingModel{}).
		Preload("Owner").
		Where(clause, args...).
		Order("created_at DESC")

	query = r.pag.apply(query, filters.Page, filters.PageSize)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	listings := make([]*entities.Listing, 0, len(models))
	for _, model := range models {
		listings = append(listings, r.toEntity(model))
	}
	return listings, nil
}

// Conversores
func (r *ListingRepository) toModel(listing *entities.Listing) *ListingModel {
	return &ListingModel{
		ID:          listing.ID,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		Currency:    string(listing.Currency),
		Category:    listing.Category,
		Location:    listing.Location,
		Images:      listing.Images,
		IsActive:    listing.IsActive,
		OwnerID:     listing.OwnerID,
		CreatedAt:   listing.CreatedAt.Unix(),
		UpdatedAt:   listing.UpdatedAt.Unix(),
	}
}

func (r *ListingRepository) toEntity(model *ListingModel) *entities.Listing {
	listing := &entities.Listing{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Price:       model.Price,
		Currency:    entities.Currency(model.Currency),
		Category:    model.Category,
		Location:    model.Location,
		Images:      model.Images,
		IsActive:    model.IsActive,
		OwnerID:     model.OwnerID,
		CreatedAt:   time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0).UTC(),
	}

	if model.Owner != nil {
		listing.Owner = &entities.Account{
			ID:             model.Owner.ID,
			Name:           model.Owner.Name,
			WhatsappNumber: model.Owner.WhatsappNumber,
			AvatarURL:      model.Owner.AvatarURL,
		}
	}

	return listing
}
