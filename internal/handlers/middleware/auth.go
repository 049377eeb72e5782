package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/repositories"
	"github.com/statusmarket/statusmarket-backend/internal/services"
)

const (
	// IdentityContextKey é a chave do contexto Gin para a identidade autenticada
	IdentityContextKey = "identity"
)

// Identity é a identidade resolvida de uma requisição autenticada
type Identity struct {
	ID    string
	Email string
	Role  entities.Role
}

// Actor converte a identidade para o chamador usado pelos serviços
func (i Identity) Actor() services.Actor {
	return services.Actor{ID: i.ID, Role: i.Role}
}

// AuthMiddleware valida bearer tokens e resolve a identidade do chamador
type AuthMiddleware struct {
	credentials *services.CredentialService
	accounts    repositories.AccountRepository
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(credentials *services.CredentialService, accounts repositories.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{
		credentials: credentials,
		accounts:    accounts,
	}
}

// Authenticate exige um bearer token válido que resolva para uma conta
// existente. O role vem de uma consulta fresca por requisição, e não do
// claim do token: mudanças de role valem imediatamente.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response := unauthorizedResponse(c, "error.unauthorized.detail")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			response := unauthorizedResponse(c, "error.unauthorized.detail")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response)
			return
		}

		claims, err := m.credentials.ValidateToken(token)
		if err != nil {
			response := unauthorizedResponse(c, "error.unauthorized.invalid_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response)
			return
		}

		account, err := m.accounts.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response := internalResponse(c)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response)
			return
		}
		if account == nil {
			// Token válido mas conta removida: trata como token inválido
			response := unauthorizedResponse(c, "error.unauthorized.invalid_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response)
			return
		}

		c.Set(IdentityContextKey, Identity{
			ID:    account.ID,
			Email: account.Email.String(),
			Role:  account.Role,
		})

		c.Next()
	}
}

// RequireAdmin restringe a rota a contas com role ADMIN.
// Deve ser registrado após Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok || identity.Role != entities.RoleAdmin {
			response := forbiddenResponse(c, "error.forbidden.admin_required")
			c.AbortWithStatusJSON(http.StatusForbidden, response)
			return
		}

		c.Next()
	}
}

// CurrentIdentity retorna a identidade autenticada da requisição
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(IdentityContextKey)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	return identity, ok
}
