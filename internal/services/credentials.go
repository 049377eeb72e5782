package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/errors"
)

// TokenClaims é o conjunto de claims assinado nos bearer tokens.
// O role embutido é informativo: o middleware sempre reconsulta o role
// atual da conta a cada requisição.
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// CredentialService cuida de hash de senhas e emissão/validação de tokens
type CredentialService struct {
	secret []byte
	expiry time.Duration
}

// NewCredentialService cria um novo CredentialService
func NewCredentialService(secret string, expiry time.Duration) *CredentialService {
	return &CredentialService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// HashPassword gera o hash bcrypt da senha
func (s *CredentialService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compara uma senha em texto puro com um hash bcrypt
func (s *CredentialService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IssueToken assina um token HS256 com identidade e expiração configurada
func (s *CredentialService) IssueToken(accountID, email string, role entities.Role) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID: accountID,
		Email:  email,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifica assinatura e expiração. Qualquer falha
// (token malformado, expirado ou assinatura inválida) colapsa em
// errors.ErrInvalidToken para não vazar detalhes ao cliente.
func (s *CredentialService) ValidateToken(tokenStr string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	return claims, nil
}
