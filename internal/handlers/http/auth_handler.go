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

// AuthHandler lida com registro, login e sessão corrente
type AuthHandler struct {
	accountService *services.AccountService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(accountService *services.AccountService) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
	}
}

// Register registra uma nova conta de vendedor
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	account, token, err := h.accountService.Register(c.Request.Context(), services.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		WhatsappNumber: req.WhatsappNumber,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			response := dto.ConflictErrorResponseI18n(c, "error.conflict.email_exists")
			c.JSON(http.StatusConflict, response)
		case errs.Is(err, errors.ErrInvalidEmail), errs.Is(err, errors.ErrInvalidAccountData):
			response := dto.ValidationErrorResponseI18n(c, nil)
			c.JSON(http.StatusBadRequest, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(account),
	})
}

// Login autentica uma conta existente
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	account, token, err := h.accountService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidCredentials) {
			response := dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized.invalid_credentials")
			c.JSON(http.StatusUnauthorized, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(account),
	})
}

// Me retorna o perfil da conta autenticada
func (h *AuthHandler) Me(c *gin.Context) {
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
