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

// UserHandler lida com o perfil próprio e o perfil público de vendedores
type UserHandler struct {
	accountService *services.AccountService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(accountService *services.AccountService) *UserHandler {
	return &UserHandler{
		accountService: accountService,
	}
}

// Me retorna o perfil da conta autenticada
func (h *UserHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), identity.ID)
	if err != nil {
		if errs.Is(err, errors.ErrAccountNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "Account")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserResponse(account)})
}

// UpdateMe aplica uma atualização parcial ao perfil da conta autenticada
func (h *UserHandler) UpdateMe(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	account, err := h.accountService.UpdateProfile(c.Request.Context(), identity.ID, services.UpdateProfileInput{
		Name:           req.Name,
		WhatsappNumber: req.WhatsappNumber,
		Location:       req.Location,
		AvatarURL:      req.AvatarURL,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrAccountNotFound):
			response := dto.NotFoundErrorResponseI18n(c, "Account")
			c.JSON(http.StatusNotFound, response)
		case errs.Is(err, errors.ErrInvalidAccountData):
			response := dto.ValidationErrorResponseI18n(c, nil)
			c.JSON(http.StatusBadRequest, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserResponse(account)})
}

// SellerProfile retorna o perfil público de um vendedor com seus
// anúncios ativos
func (h *UserHandler) SellerProfile(c *gin.Context) {
	account, listings, err := h.accountService.SellerProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errors.ErrAccountNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "Seller")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, gin.H{"seller": dto.ToSellerResponse(account, listings)})
}
