package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/statusmarket/statusmarket-backend/internal/domain/errors"
	"github.com/statusmarket/statusmarket-backend/internal/handlers/dto"
	"github.com/statusmarket/statusmarket-backend/internal/handlers/middleware"
	"github.com/statusmarket/statusmarket-backend/internal/services"
)

// ListingHandler lida com requisições HTTP de anúncios
type ListingHandler struct {
	listingService *services.ListingService
}

// NewListingHandler cria um novo ListingHandler
func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// List lista anúncios ativos aplicando os filtros de busca
func (h *ListingHandler) List(c *gin.Context) {
	var query dto.ListingFiltersQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	listings, err := h.listingService.List(c.Request.Context(), query.ToFilters())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": dto.ToListingResponses(listings)})
}

// Mine lista os anúncios ativos do vendedor autenticado
func (h *ListingHandler) Mine(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	var query dto.ListingFiltersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	listings, err := h.listingService.Mine(c.Request.Context(), identity.ID, query.ToFilters())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": dto.ToListingResponses(listings)})
}

// Get busca um anúncio por ID (público, inclui anúncios aposentados)
func (h *ListingHandler) Get(c *gin.Context) {
	listing, err := h.listingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errors.ErrListingNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "Listing")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": dto.ToListingResponse(listing)})
}

// Create publica um novo anúncio do vendedor autenticado
func (h *ListingHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	listing, err := h.listingService.Create(c.Request.Context(), identity.ID, req.ToInput())
	if err != nil {
		if errs.Is(err, errors.ErrInvalidListingData) {
			response := dto.ValidationErrorResponseI18n(c, nil)
			c.JSON(http.StatusBadRequest, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"listing": dto.ToListingResponse(listing)})
}

// Update aplica uma atualização parcial (dono ou admin)
func (h *ListingHandler) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	listing, err := h.listingService.Update(c.Request.Context(), c.Param("id"), identity.Actor(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrListingNotFound):
			response := dto.NotFoundErrorResponseI18n(c, "Listing")
			c.JSON(http.StatusNotFound, response)
		case errs.Is(err, errors.ErrForbidden):
			response := dto.ForbiddenErrorResponseI18n(c, "error.forbidden.not_owner")
			c.JSON(http.StatusForbidden, response)
		case errs.Is(err, errors.ErrInvalidListingData):
			response := dto.ValidationErrorResponseI18n(c, nil)
			c.JSON(http.StatusBadRequest, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": dto.ToListingResponse(listing)})
}

// Retire aposenta um anúncio (soft delete do dono ou admin)
func (h *ListingHandler) Retire(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	err := h.listingService.Retire(c.Request.Context(), c.Param("id"), identity.Actor())
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrListingNotFound):
			response := dto.NotFoundErrorResponseI18n(c, "Listing")
			c.JSON(http.StatusNotFound, response)
		case errs.Is(err, errors.ErrForbidden):
			response := dto.ForbiddenErrorResponseI18n(c, "error.forbidden.not_owner")
			c.JSON(http.StatusForbidden, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
