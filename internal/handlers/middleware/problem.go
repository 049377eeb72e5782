package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/statusmarket/statusmarket-backend/internal/infrastructure/i18n"
)

// problemResponse é a forma RFC 7807 emitida pelos middlewares.
// Espelha dto.ErrorResponse; duplicada aqui porque o pacote dto
// importa middleware para as chaves de contexto.
type problemResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

func newProblemResponse(c *gin.Context, problemType, titleKey, detailKey string, status int) problemResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	return problemResponse{
		Type:     baseURL + problemType,
		Title:    translate(c, titleKey),
		Status:   status,
		Detail:   translate(c, detailKey),
		Instance: c.Request.URL.Path,
	}
}

func unauthorizedResponse(c *gin.Context, detailKey string) problemResponse {
	return newProblemResponse(c, "/problems/unauthorized", "error.unauthorized.title", detailKey, 401)
}

func forbiddenResponse(c *gin.Context, detailKey string) problemResponse {
	return newProblemResponse(c, "/problems/forbidden", "error.forbidden.title", detailKey, 403)
}

func internalResponse(c *gin.Context) problemResponse {
	return newProblemResponse(c, "/problems/internal-error", "error.internal.title", "error.internal.detail", 500)
}

// translate resolve uma chave pelo serviço i18n do contexto,
// caindo para a própria chave quando o serviço não está disponível
func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if langStr == "" {
		langStr = service.GetDefaultLanguage()
	}

	return service.T(langStr, key)
}
