package postgres

import "gorm.io/gorm"

// Pagination contém os limites de paginação dos repositories, vindos
// da configuração. Page e PageSize zerados significam sem paginação:
// chamadas internas (perfil de vendedor, painéis de admin) enxergam
// todas as linhas.
type Pagination struct {
	defaultPageSize int
	maxPageSize     int
}

// NewPagination cria os limites de paginação usados pelos repositories
func NewPagination(defaultPageSize, maxPageSize int) Pagination {
	if defaultPageSize < 1 {
		defaultPageSize = 20
	}
	if maxPageSize < 1 {
		maxPageSize = 100
	}
	return Pagination{
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// apply aplica Limit/Offset apenas quando o chamador pediu paginação
// explícita; caso contrário a consulta retorna todas as linhas
func (p Pagination) apply(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 && pageSize < 1 {
		return query
	}

	if pageSize < 1 {
		pageSize = p.defaultPageSize
	}
	if pageSize > p.maxPageSize {
		pageSize = p.maxPageSize
	}
	if page < 1 {
		page = 1
	}

	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
