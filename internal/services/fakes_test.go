package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/ports"
	"github.com/statusmarket/statusmarket-backend/internal/domain/repositories"
)

// noopLogger descarta tudo; os testes de serviço não inspecionam logs
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)    {}
func (noopLogger) Error(msg string, args ...any)   {}
func (noopLogger) Debug(msg string, args ...any)   {}
func (noopLogger) Warn(msg string, args ...any)    {}
func (l noopLogger) With(args ...any) ports.Logger { return l }

// fakeAccountRepo guarda contas em memória, mais recentes primeiro
type fakeAccountRepo struct {
	accounts []*entities.Account
	seq      int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entities.Account) error {
	r.seq++
	if account.ID == "" {
		account.ID = fmt.Sprintf("acc-%d", r.seq)
	}
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*entities.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entities.Account, error) {
	for _, a := range r.accounts {
		if strings.EqualFold(a.Email.String(), email) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entities.Account) error {
	for i, a := range r.accounts {
		if a.ID == account.ID {
			r.accounts[i] = account
			return nil
		}
	}
	return fmt.Errorf("account not found: %s", account.ID)
}

func (r *fakeAccountRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeAccountRepo) List(_ context.Context, _ repositories.AccountFilters) ([]*entities.Account, error) {
	out := make([]*entities.Account, len(r.accounts))
	for i, a := range r.accounts {
		out[len(r.accounts)-1-i] = a
	}
	return out, nil
}

// fakeListingRepo guarda anúncios em memória. List aplica apenas os
// filtros de dono e ativos; os demais são cobertos pelos testes do
// adaptador de persistência.
type fakeListingRepo struct {
	listings []*entities.Listing
	seq      int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{}
}

func (r *fakeListingRepo) Create(_ context.Context, listing *entities.Listing) error {
	r.seq++
	if listing.ID == "" {
		listing.ID = fmt.Sprintf("lst-%d", r.seq)
	}
	now := time.Now().UTC()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	copied := *listing
	r.listings = append(r.listings, &copied)
	return nil
}

func (r *fakeListingRepo) FindByID(_ context.Context, id string) (*entities.Listing, error) {
	for _, l := range r.listings {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeListingRepo) Update(_ context.Context, listing *entities.Listing) error {
	for i, l := range r.listings {
		if l.ID == listing.ID {
			copied := *listing
			r.listings[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("listing not found: %s", listing.ID)
}

func (r *fakeListingRepo) Retire(_ context.Context, id string) error {
	for _, l := range r.listings {
		if l.ID == id {
			l.IsActive = false
			return nil
		}
	}
	return nil
}

func (r *fakeListingRepo) Purge(_ context.Context, id string) error {
	for i, l := range r.listings {
		if l.ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeListingRepo) List(_ context.Context, filters repositories.ListingFilters) ([]*entities.Listing, error) {
	var out []*entities.Listing
	for i := len(r.listings) - 1; i >= 0; i-- {
		l := r.listings[i]
		if !l.IsActive {
			continue
		}
		if filters.OwnerID != nil && l.OwnerID != *filters.OwnerID {
			continue
		}
		copied := *l
		out = append(out, &copied)
	}
	return out, nil
}

// fakeImageStorage registra os uploads e devolve URLs determinísticas.
// Entradas já hospedadas (http...) passam direto, como o adaptador real.
type fakeImageStorage struct {
	uploads []string
	failOn  string
}

func (s *fakeImageStorage) Upload(_ context.Context, image, folder string) (string, error) {
	if s.failOn != "" && image == s.failOn {
		return "", fmt.Errorf("upload failed for %s", image)
	}
	if strings.HasPrefix(strings.TrimSpace(image), "http") {
		return strings.TrimSpace(image), nil
	}
	s.uploads = append(s.uploads, image)
	return fmt.Sprintf("https://cdn.test/%s/%d.jpg", folder, len(s.uploads)), nil
}
