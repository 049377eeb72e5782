package services

import (
	"context"
	"fmt"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/errors"
	"github.com/statusmarket/statusmarket-backend/internal/domain/ports"
	"github.com/statusmarket/statusmarket-backend/internal/domain/repositories"
	"github.com/statusmarket/statusmarket-backend/internal/domain/valueobjects"
)

// AccountService contém a lógica de negócio para contas
type AccountService struct {
	accounts    repositories.AccountRepository
	listings    repositories.ListingRepository
	credentials *CredentialService
	adminEmail  string
	logger      ports.Logger
}

// NewAccountService cria um novo AccountService
func NewAccountService(
	accounts repositories.AccountRepository,
	listings repositories.ListingRepository,
	credentials *CredentialService,
	adminEmail string,
	logger ports.Logger,
) *AccountService {
	return &AccountService{
		accounts:    accounts,
		listings:    listings,
		credentials: credentials,
		adminEmail:  adminEmail,
		logger:      logger,
	}
}

// RegisterInput representa os dados para registrar uma conta
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	WhatsappNumber string
}

// Register registra uma nova conta e emite o token de sessão.
// O role é decidido pela política ClassifyRole: apenas o email
// configurado como admin recebe ADMIN.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*entities.Account, string, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, "", errors.ErrInvalidEmail
	}

	existing, err := s.accounts.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", errors.ErrEmailAlreadyExists
	}

	hash, err := s.credentials.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	account := &entities.Account{
		Name:           input.Name,
		Email:          email,
		PasswordHash:   hash,
		WhatsappNumber: input.WhatsappNumber,
		Role:           entities.ClassifyRole(email.String(), s.adminEmail),
	}

	if err := account.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", errors.ErrInvalidAccountData, err)
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.credentials.IssueToken(account.ID, account.Email.String(), account.Role)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("account registered", "account_id", account.ID, "role", account.Role)

	return account, token, nil
}

// Login autentica uma conta pelas credenciais. Email desconhecido e
// senha incorreta produzem o mesmo erro, evitando enumeração de contas.
func (s *AccountService) Login(ctx context.Context, emailStr, password string) (*entities.Account, string, error) {
	email, err := valueobjects.NewEmail(emailStr)
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, "", err
	}
	if account == nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if !s.credentials.VerifyPassword(password, account.PasswordHash) {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.credentials.IssueToken(account.ID, account.Email.String(), account.Role)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// GetAccount busca uma conta por ID
func (s *AccountService) GetAccount(ctx context.Context, id string) (*entities.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.ErrAccountNotFound
	}
	return account, nil
}

// UpdateProfileInput representa a atualização parcial de perfil
type UpdateProfileInput struct {
	Name           *string
	WhatsappNumber *string
	Location       *string
	AvatarURL      *string
}

// UpdateProfile aplica uma atualização parcial ao perfil da conta
func (s *AccountService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*entities.Account, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.WhatsappNumber != nil {
		account.WhatsappNumber = *input.WhatsappNumber
	}
	if input.Location != nil {
		account.Location = input.Location
	}
	if input.AvatarURL != nil {
		account.AvatarURL = input.AvatarURL
	}

	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidAccountData, err)
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// SellerProfile retorna o perfil público de um vendedor com seus
// anúncios ativos, mais recentes primeiro
func (s *AccountService) SellerProfile(ctx context.Context, id string) (*entities.Account, []*entities.Listing, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, errors.ErrAccountNotFound
	}

	listings, err := s.listings.List(ctx, repositories.ListingFilters{OwnerID: &id})
	if err != nil {
		return nil, nil, err
	}

	return account, listings, nil
}

// ListAccounts lista contas para o painel de admin, mais recentes primeiro
func (s *AccountService) ListAccounts(ctx context.Context, filters repositories.AccountFilters) ([]*entities.Account, error) {
	return s.accounts.List(ctx, filters)
}

// DeleteAccount remove uma conta permanentemente (moderação de admin).
// O admin não pode remover a própria conta.
func (s *AccountService) DeleteAccount(ctx context.Context, actor Actor, targetID string) error {
	if actor.ID == targetID {
		return errors.ErrSelfDeletion
	}

	target, err := s.accounts.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return errors.ErrAccountNotFound
	}

	if err := s.accounts.Delete(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info("account deleted by admin", "account_id", targetID, "admin_id", actor.ID)
	return nil
}
