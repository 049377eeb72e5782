package entities

import (
	"errors"
	"time"
)

const (
	// MinListingImages e MaxListingImages limitam a galeria de um anúncio
	MinListingImages = 1
	MaxListingImages = 5
)

// Currency representa a moeda de um anúncio
type Currency string

const (
	CurrencyDH   Currency = "DH"
	CurrencyFCFA Currency = "FCFA"
)

// IsValid verifica se a moeda é uma das unidades aceitas
func (c Currency) IsValid() bool {
	return c == CurrencyDH || c == CurrencyFCFA
}

// Listing representa um anúncio de venda publicado por uma conta
type Listing struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Currency    Currency
	Category    string
	Location    string
	Images      []string
	IsActive    bool
	OwnerID     string
	Owner       *Account
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Retire marca o anúncio como inativo (soft delete do próprio vendedor).
// A linha permanece no banco e continua acessível pela página de detalhe.
func (l *Listing) Retire() {
	l.IsActive = false
}

// Validate valida regras de negócio da entidade Listing
func (l *Listing) Validate() error {
	if len(l.Title) < 3 {
		return errors.New("title must be at least 3 characters")
	}

	if l.Price <= 0 {
		return errors.New("price must be positive")
	}

	if !l.Currency.IsValid() {
		return errors.New("invalid currency")
	}

	if len(l.Category) < 2 {
		return errors.New("category must be at least 2 characters")
	}

	if len(l.Description) < 10 {
		return errors.New("description must be at least 10 characters")
	}

	if len(l.Location) < 2 {
		return errors.New("location must be at least 2 characters")
	}

	if len(l.Images) < MinListingImages || len(l.Images) > MaxListingImages {
		return errors.New("listing must have between 1 and 5 images")
	}

	for _, img := range l.Images {
		if img == "" {
			return errors.New("image entries must not be empty")
		}
	}

	if l.OwnerID == "" {
		return errors.New("owner is required")
	}

	return nil
}
