package dto

import (
	"time"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/repositories"
	"github.com/statusmarket/statusmarket-backend/internal/services"
)

// CreateListingRequest representa a requisição para publicar um anúncio
type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=200"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Currency    string   `json:"currency" binding:"required,oneof=DH FCFA"`
	Category    string   `json:"category" binding:"required,min=2,max=100"`
	Description string   `json:"description" binding:"required,min=10"`
	Location    string   `json:"location" binding:"required,min=2,max=100"`
	Images      []string `json:"images" binding:"required,min=1,max=5,dive,min=1"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateListingRequest) ToInput() services.CreateListingInput {
	return services.CreateListingInput{
		Title:       r.Title,
		Price:       r.Price,
		Currency:    entities.Currency(r.Currency),
		Category:    r.Category,
		Description: r.Description,
		Location:    r.Location,
		Images:      r.Images,
	}
}

// UpdateListingRequest representa a atualização parcial de um anúncio.
// O campo images ausente preserva a galeria atual.
type UpdateListingRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3,max=200"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Currency    *string  `json:"currency" binding:"omitempty,oneof=DH FCFA"`
	Category    *string  `json:"category" binding:"omitempty,min=2,max=100"`
	Description *string  `json:"description" binding:"omitempty,min=10"`
	Location    *string  `json:"location" binding:"omitempty,min=2,max=100"`
	Images      []string `json:"images" binding:"omitempty,min=1,max=5,dive,min=1"`
}

// ToInput converte a requisição para o input do serviço
func (r UpdateListingRequest) ToInput() services.UpdateListingInput {
	input := services.UpdateListingInput{
		Title:       r.Title,
		Price:       r.Price,
		Category:    r.Category,
		Description: r.Description,
		Location:    r.Location,
		Images:      r.Images,
	}
	if r.Currency != nil {
		currency := entities.Currency(*r.Currency)
		input.Currency = &currency
	}
	return input
}

// ListingFiltersQuery representa os parâmetros de busca de anúncios
type ListingFiltersQuery struct {
	Search   *string  `form:"search"`
	Category *string  `form:"category"`
	Location *string  `form:"location"`
	MinPrice *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	SellerID *string  `form:"sellerId"`
	Currency *string  `form:"currency" binding:"omitempty,oneof=DH FCFA"`
	Page     int      `form:"page" binding:"omitempty,gte=1"`
	PageSize int      `form:"pageSize" binding:"omitempty,gte=1"`
}

// ToFilters converte os parâmetros de query para filtros de repositório
func (q ListingFiltersQuery) ToFilters() repositories.ListingFilters {
	filters := repositories.ListingFilters{
		Search:   q.Search,
		Category: q.Category,
		Location: q.Location,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		OwnerID:  q.SellerID,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.Currency != nil {
		currency := entities.Currency(*q.Currency)
		filters.Currency = &currency
	}
	return filters
}

// ListingOwnerResponse é a projeção pública do dono de um anúncio
type ListingOwnerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	WhatsappNumber string  `json:"whatsappNumber"`
	AvatarURL      *string `json:"avatarUrl,omitempty"`
}

// ListingResponse representa a resposta de um anúncio
type ListingResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Price       float64               `json:"price"`
	Currency    string                `json:"currency"`
	Category    string                `json:"category"`
	Location    string                `json:"location"`
	Images      []string              `json:"images"`
	IsActive    bool                  `json:"isActive"`
	OwnerID     string                `json:"ownerId"`
	Owner       *ListingOwnerResponse `json:"owner,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// ToListingResponse converte uma entidade Listing para ListingResponse
func ToListingResponse(listing *entities.Listing) ListingResponse {
	response := ListingResponse{
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
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}

	if listing.Owner != nil {
		response.Owner = &ListingOwnerResponse{
			ID:             listing.Owner.ID,
			Name:           listing.Owner.Name,
			WhatsappNumber: listing.Owner.WhatsappNumber,
			AvatarURL:      listing.Owner.AvatarURL,
		}
	}

	return response
}

// ToListingResponses converte uma lista de anúncios
func ToListingResponses(listings []*entities.Listing) []ListingResponse {
	responses := make([]ListingResponse, len(listings))
	for i, listing := range listings {
		responses[i] = ToListingResponse(listing)
	}
	return responses
}
