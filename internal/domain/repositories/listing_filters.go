package repositories

import (
	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/predicate"
)

// ListingFilters contém os filtros opcionais de busca de anúncios.
// Campos nil não restringem a consulta.
type ListingFilters struct {
	Search   *string
	Category *string
	Location *string
	MinPrice *float64
	MaxPrice *float64
	OwnerID  *string
	Currency *entities.Currency
	Page     int // Página (começa em 1); zerado junto com PageSize retorna tudo
	PageSize int // Itens por página; limites vêm da configuração
}

// Predicate converte os filtros em um predicado tipado. Função pura:
// todos os filtros presentes são conjugados (AND) e a busca textual
// forma um único grupo OR sobre título, descrição e localização.
// Toda listagem é sempre restrita a anúncios ativos.
func (f ListingFilters) Predicate() predicate.Predicate {
	conjuncts := []predicate.Predicate{
		predicate.Equals{Field: predicate.FieldIsActive, Value: true},
	}

	if f.Category != nil && *f.Category != "" {
		conjuncts = append(conjuncts, predicate.EqualsFold{
			Field: predicate.FieldCategory,
			Value: *f.Category,
		})
	}

	if f.Location != nil && *f.Location != "" {
		conjuncts = append(conjuncts, predicate.ContainsFold{
			Field: predicate.FieldLocation,
			Value: *f.Location,
		})
	}

	if f.Search != nil && *f.Search != "" {
		conjuncts = append(conjuncts, predicate.Or{Preds: []predicate.Predicate{
			predicate.ContainsFold{Field: predicate.FieldTitle, Value: *f.Search},
			predicate.ContainsFold{Field: predicate.FieldDescription, Value: *f.Search},
			predicate.ContainsFold{Field: predicate.FieldLocation, Value: *f.Search},
		}})
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		conjuncts = append(conjuncts, predicate.Range{
			Field: predicate.FieldPrice,
			Min:   f.MinPrice,
			Max:   f.MaxPrice,
		})
	}

	if f.OwnerID != nil && *f.OwnerID != "" {
		conjuncts = append(conjuncts, predicate.Equals{
			Field: predicate.FieldOwnerID,
			Value: *f.OwnerID,
		})
	}

	if f.Currency != nil && *f.Currency != "" {
		conjuncts = append(conjuncts, predicate.Equals{
			Field: predicate.FieldCurrency,
			Value: string(*f.Currency),
		})
	}

	return predicate.And{Preds: conjuncts}
}
