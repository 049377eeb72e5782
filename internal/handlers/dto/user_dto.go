package dto

import (
	"time"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/repositories"
)

// UserResponse representa o perfil público de uma conta
type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	WhatsappNumber string    `json:"whatsappNumber"`
	Role           string    `json:"role"`
	AvatarURL      *string   `json:"avatarUrl,omitempty"`
	Location       *string   `json:"location,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UpdateProfileRequest representa a atualização parcial de perfil
type UpdateProfileRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=2,max=100"`
	WhatsappNumber *string `json:"whatsappNumber" binding:"omitempty,min=6,max=20"`
	Location       *string `json:"location" binding:"omitempty,max=255"`
	AvatarURL      *string `json:"avatarUrl" binding:"omitempty,url"`
}

// SellerResponse representa o perfil público de um vendedor com seus
// anúncios ativos (email omitido de propósito: o contato é o WhatsApp)
type SellerResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	WhatsappNumber string            `json:"whatsappNumber"`
	AvatarURL      *string           `json:"avatarUrl,omitempty"`
	Location       *string           `json:"location,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	Listings       []ListingResponse `json:"listings"`
}

// AccountFiltersQuery representa os parâmetros de listagem de contas.
// Paginação é opcional: sem page/pageSize a listagem retorna tudo.
type AccountFiltersQuery struct {
	Role     *string `form:"role" binding:"omitempty,oneof=SELLER ADMIN"`
	Page     int     `form:"page" binding:"omitempty,gte=1"`
	PageSize int     `form:"pageSize" binding:"omitempty,gte=1"`
}

// ToFilters converte a query string para os filtros do repository
func (q AccountFiltersQuery) ToFilters() repositories.AccountFilters {
	filters := repositories.AccountFilters{
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	if q.Role != nil {
		role := entities.Role(*q.Role)
		filters.Role = &role
	}

	return filters
}

// ToUserResponse converte uma entidade Account para UserResponse
func ToUserResponse(account *entities.Account) UserResponse {
	return UserResponse{
		ID:             account.ID,
		Name:           account.Name,
		Email:          account.Email.String(),
		WhatsappNumber: account.WhatsappNumber,
		Role:           string(account.Role),
		AvatarURL:      account.AvatarURL,
		Location:       account.Location,
		CreatedAt:      account.CreatedAt,
	}
}

// ToUserResponses converte uma lista de contas para UserResponse
func ToUserResponses(accounts []*entities.Account) []UserResponse {
	responses := make([]UserResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = ToUserResponse(account)
	}
	return responses
}

// ToSellerResponse converte conta + anúncios para o perfil público
func ToSellerResponse(account *entities.Account, listings []*entities.Listing) SellerResponse {
	return SellerResponse{
		ID:             account.ID,
		Name:           account.Name,
		WhatsappNumber: account.WhatsappNumber,
		AvatarURL:      account.AvatarURL,
		Location:       account.Location,
		CreatedAt:      account.CreatedAt,
		Listings:       ToListingResponses(listings),
	}
}
