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

// AdminHandler lida com a moderação de contas e anúncios.
// Todas as rotas exigem Authenticate + RequireAdmin.
type AdminHandler struct {
	accountService *services.AccountService
	listingService *services.ListingService
}

// NewAdminHandler cria um novo AdminHandler
func NewAdminHandler(accountService *services.AccountService, listingService *services.ListingService) *AdminHandler {
	return &AdminHandler{
		accountService: accountService,
		listingService: listingService,
	}
}

// ListUsers lista todas as contas, mais recentes primeiro. Sem
// page/pageSize na query o painel recebe todas as linhas.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AccountFiltersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), query.ToFilters())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserResponses(accounts)})
}

// DeleteUser remove uma conta permanentemente. O admin não pode
// remover a própria conta.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	err := h.accountService.DeleteAccount(c.Request.Context(), identity.Actor(), c.Param("id"))
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrSelfDeletion):
			response := dto.BadRequestErrorResponseI18n(c, "error.bad_request.self_delete")
			c.JSON(http.StatusBadRequest, response)
		case errs.Is(err, errors.ErrAccountNotFound):
			response := dto.NotFoundErrorResponseI18n(c, "User")
			c.JSON(http.StatusNotFound, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListListings lista anúncios para o painel de moderação.
// Mantém o filtro de ativos do contrato atual; sem page/pageSize
// na query o painel recebe todas as linhas.
func (h *AdminHandler) ListListings(c *gin.Context) {
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

// PurgeListing remove um anúncio permanentemente, seja de quem for
func (h *AdminHandler) PurgeListing(c *gin.Context) {
	err := h.listingService.Purge(c.Request.Context(), c.Param("id"))
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

	c.Status(http.StatusNoContent)
}
