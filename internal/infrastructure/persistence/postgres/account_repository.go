package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/repositories"
	"github.com/statusmarket/statusmarket-backend/internal/domain/valueobjects"
)

// AccountRepository implementa repositories.AccountRepository
type AccountRepository struct {
	db  *gorm.DB
	pag Pagination
}

// NewAccountRepository cria um novo AccountRepository
func NewAccountRepository(db *gorm.DB, pag Pagination) repositories.AccountRepository {
	return &AccountRepository{db: db, pag: pag}
}

func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	model := r.toModel(account)
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entities.Account, error) {
	var model AccountModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var model AccountModel

	// Emails são persistidos em minúsculas pelo value object
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *AccountRepository) Update(ctx context.Context, account *entities.Account) error {
	account.UpdatedAt = time.Now().UTC()
	model := r.toModel(account)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	// Hard delete: moderação de admin remove a linha
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&AccountModel{}).Error
}

func (r *AccountRepository) List(ctx context.Context, filters repositories.AccountFilters) ([]*entities.Account, error) {
	var models []*AccountModel

	query := r.db.WithContext(ctx).Model(&AccountModel{})

	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}

	query = query.Order("created_at DESC")
	query = r.pag.apply(query, filters.Page, filters.PageSize)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// Conversores
func (r *AccountRepository) toModel(account *entities.Account) *AccountModel {
	return &AccountModel{
		ID:             account.ID,
		Name:           account.Name,
		Email:          account.Email.String(),
		PasswordHash:   account.PasswordHash,
		WhatsappNumber: account.WhatsappNumber,
		AvatarURL:      account.AvatarURL,
		Location:       account.Location,
		Role:           string(account.Role),
		CreatedAt:      account.CreatedAt.Unix(),
		UpdatedAt:      account.UpdatedAt.Unix(),
	}
}

func (r *AccountRepository) toEntity(model *AccountModel) (*entities.Account, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.Account{
		ID:             model.ID,
		Name:           model.Name,
		Email:          email,
		PasswordHash:   model.PasswordHash,
		WhatsappNumber: model.WhatsappNumber,
		AvatarURL:      model.AvatarURL,
		Location:       model.Location,
		Role:           entities.Role(model.Role),
		CreatedAt:      time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:      time.Unix(model.UpdatedAt, 0).UTC(),
	}, nil
}

func (r *AccountRepository) toEntities(models []*AccountModel) ([]*entities.Account, error) {
	accounts := make([]*entities.Account, 0, len(models))

	for _, model := range models {
		account, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}
