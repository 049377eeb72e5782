package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/ports"
	"github.com/statusmarket/statusmarket-backend/internal/domain/repositories"
	"github.com/statusmarket/statusmarket-backend/internal/handlers/dto"
	"github.com/statusmarket/statusmarket-backend/internal/handlers/middleware"
	"github.com/statusmarket/statusmarket-backend/internal/services"
)

// noopLogger descarta tudo; os testes de handler não inspecionam logs
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)    {}
func (noopLogger) Error(msg string, args ...any)   {}
func (noopLogger) Debug(msg string, args ...any)   {}
func (noopLogger) Warn(msg string, args ...any)    {}
func (l noopLogger) With(args ...any) ports.Logger { return l }

// memListingRepo guarda anúncios em memória para os testes de handler
type memListingRepo struct {
	listings []*entities.Listing
	seq      int
}

func (r *memListingRepo) Create(_ context.Context, listing *entities.Listing) error {
	r.seq++
	if listing.ID == "" {
		listing.ID = fmt.Sprintf("lst-%d", r.seq)
	}
	copied := *listing
	r.listings = append(r.listings, &copied)
	return nil
}

func (r *memListingRepo) FindByID(_ context.Context, id string) (*entities.Listing, error) {
	for _, l := range r.listings {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memListingRepo) Update(_ context.Context, listing *entities.Listing) error {
	for i, l := range r.listings {
		if l.ID == listing.ID {
			copied := *listing
			r.listings[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("listing not found: %s", listing.ID)
}

func (r *memListingRepo) Retire(_ context.Context, id string) error {
	for _, l := range r.listings {
		if l.ID == id {
			l.IsActive = false
		}
	}
	return nil
}

func (r *memListingRepo) Purge(_ context.Context, id string) error {
	for i, l := range r.listings {
		if l.ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memListingRepo) List(_ context.Context, filters repositories.ListingFilters) ([]*entities.Listing, error) {
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

// passthroughStorage devolve URLs http como estão e hospeda o resto
type passthroughStorage struct{}

func (passthroughStorage) Upload(_ context.Context, image, _ string) (string, error) {
	if strings.HasPrefix(strings.TrimSpace(image), "http") {
		return strings.TrimSpace(image), nil
	}
	return "https://cdn.test/hosted.jpg", nil
}

// identityFor injeta a identidade no contexto, substituindo Authenticate
func identityFor(id string, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityContextKey, middleware.Identity{
			ID:    id,
			Email: id + "@example.com",
			Role:  role,
		})
		c.Next()
	}
}

func newListingRouter(repo *memListingRepo, actorID string, role entities.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := services.NewListingService(repo, passthroughStorage{}, "statusmarket", noopLogger{})
	handler := NewListingHandler(service)

	router := gin.New()
	auth := identityFor(actorID, role)
	router.GET("/api/listings", handler.List)
	router.GET("/api/listings/mine", auth, handler.Mine)
	router.GET("/api/listings/:id", handler.Get)
	router.POST("/api/listings", auth, handler.Create)
	router.PUT("/api/listings/:id", auth, handler.Update)
	router.DELETE("/api/listings/:id", auth, handler.Retire)
	return router
}

func seedHandlerListing(t *testing.T, repo *memListingRepo, ownerID string) *entities.Listing {
	t.Helper()
	listing := &entities.Listing{
		Title:       "iPhone 12 usado",
		Description: "Em ótimo estado, com carregador original.",
		Price:       1500,
		Currency:    entities.CurrencyDH,
		Category:    "Electronique",
		Location:    "Casablanca",
		Images:      []string{"https://cdn.example.com/1.jpg"},
		IsActive:    true,
		OwnerID:     ownerID,
	}
	if err := repo.Create(context.Background(), listing); err != nil {
		t.Fatal(err)
	}
	return listing
}

func TestListingHandlerCreate(t *testing.T) {
	t.Run("payload válido publica com 201", func(t *testing.T) {
		repo := &memListingRepo{}
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		body := `{
			"title": "Bicicleta urbana",
			"price": 300,
			"currency": "DH",
			"category": "Sport",
			"description": "Pouco usada, revisada recentemente.",
			"location": "Rabat",
			"images": ["https://cdn.example.com/bike.jpg"]
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/listings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("esperava 201, obteve %d: %s", w.Code, w.Body.String())
		}

		var response struct {
			Listing dto.ListingResponse `json:"listing"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}
		if response.Listing.OwnerID != "seller-1" {
			t.Errorf("esperava dono seller-1, obteve '%s'", response.Listing.OwnerID)
		}
		if !response.Listing.IsActive {
			t.Error("anúncio novo deveria estar ativo")
		}
	})

	t.Run("preço negativo retorna 400", func(t *testing.T) {
		repo := &memListingRepo{}
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		body := `{
			"title": "Bicicleta urbana",
			"price": -10,
			"currency": "DH",
			"category": "Sport",
			"description": "Pouco usada, revisada recentemente.",
			"location": "Rabat",
			"images": ["https://cdn.example.com/bike.jpg"]
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/listings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
		if len(repo.listings) != 0 {
			t.Error("nenhuma linha deveria ter sido gravada")
		}
	})

	t.Run("seis imagens retorna 400", func(t *testing.T) {
		repo := &memListingRepo{}
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		body := `{
			"title": "Bicicleta urbana",
			"price": 300,
			"currency": "DH",
			"category": "Sport",
			"description": "Pouco usada, revisada recentemente.",
			"location": "Rabat",
			"images": ["a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"]
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/listings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
	})

	t.Run("moeda desconhecida retorna 400", func(t *testing.T) {
		repo := &memListingRepo{}
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		body := `{
			"title": "Bicicleta urbana",
			"price": 300,
			"currency": "USD",
			"category": "Sport",
			"description": "Pouco usada, revisada recentemente.",
			"location": "Rabat",
			"images": ["https://cdn.example.com/bike.jpg"]
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/listings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
	})
}

func TestListingHandlerGet(t *testing.T) {
	t.Run("detalhe de anúncio existente", func(t *testing.T) {
		repo := &memListingRepo{}
		listing := seedHandlerListing(t, repo, "seller-1")
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/listings/"+listing.ID, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d", w.Code)
		}
	})

	t.Run("detalhe de anúncio aposentado continua acessível", func(t *testing.T) {
		repo := &memListingRepo{}
		listing := seedHandlerListing(t, repo, "seller-1")
		if err := repo.Retire(context.Background(), listing.ID); err != nil {
			t.Fatal(err)
		}
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/listings/"+listing.ID, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200 para aposentado, obteve %d", w.Code)
		}

		var response struct {
			Listing dto.ListingResponse `json:"listing"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatal(err)
		}
		if response.Listing.IsActive {
			t.Error("anúncio deveria aparecer como inativo")
		}
	})

	t.Run("anúncio inexistente retorna 404", func(t *testing.T) {
		repo := &memListingRepo{}
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/listings/nao-existe", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("esperava 404, obteve %d", w.Code)
		}
	})
}

func TestListingHandlerUpdate(t *testing.T) {
	t.Run("quem não é dono recebe 403", func(t *testing.T) {
		repo := &memListingRepo{}
		listing := seedHandlerListing(t, repo, "seller-1")
		router := newListingRouter(repo, "seller-2", entities.RoleSeller)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/api/listings/"+listing.ID, bytes.NewBufferString(`{"title": "Hackeado"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava 403, obteve %d", w.Code)
		}
	})

	t.Run("admin atualiza anúncio de qualquer vendedor", func(t *testing.T) {
		repo := &memListingRepo{}
		listing := seedHandlerListing(t, repo, "seller-1")
		router := newListingRouter(repo, "admin-1", entities.RoleAdmin)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/api/listings/"+listing.ID, bytes.NewBufferString(`{"title": "Título moderado"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("anúncio inexistente retorna 404", func(t *testing.T) {
		repo := &memListingRepo{}
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/api/listings/nao-existe", bytes.NewBufferString(`{"title": "Qualquer"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("esperava 404, obteve %d", w.Code)
		}
	})
}

func TestListingHandlerRetire(t *testing.T) {
	t.Run("dono aposenta com 204 e some da listagem", func(t *testing.T) {
		repo := &memListingRepo{}
		listing := seedHandlerListing(t, repo, "seller-1")
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/api/listings/"+listing.ID, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("esperava 204, obteve %d", w.Code)
		}

		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/listings", nil)
		router.ServeHTTP(w, req)

		var response struct {
			Listings []dto.ListingResponse `json:"listings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatal(err)
		}
		if len(response.Listings) != 0 {
			t.Errorf("anúncio aposentado não deveria aparecer, obteve %d", len(response.Listings))
		}
	})

	t.Run("quem não é dono recebe 403", func(t *testing.T) {
		repo := &memListingRepo{}
		listing := seedHandlerListing(t, repo, "seller-1")
		router := newListingRouter(repo, "seller-2", entities.RoleSeller)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/api/listings/"+listing.ID, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava 403, obteve %d", w.Code)
		}
	})
}

func TestListingHandlerMine(t *testing.T) {
	t.Run("retorna apenas os anúncios do vendedor autenticado", func(t *testing.T) {
		repo := &memListingRepo{}
		seedHandlerListing(t, repo, "seller-1")
		seedHandlerListing(t, repo, "seller-2")
		router := newListingRouter(repo, "seller-1", entities.RoleSeller)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/listings/mine", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d", w.Code)
		}

		var response struct {
			Listings []dto.ListingResponse `json:"listings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatal(err)
		}
		if len(response.Listings) != 1 || response.Listings[0].OwnerID != "seller-1" {
			t.Errorf("esperava apenas o anúncio do seller-1, obteve %d", len(response.Listings))
		}
	})
}
