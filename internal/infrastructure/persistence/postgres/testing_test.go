package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/statusmarket/statusmarket-backend/internal/domain/entities"
	"github.com/statusmarket/statusmarket-backend/internal/domain/valueobjects"
)

// limites de paginação usados em todos os testes de repository
var testPagination = NewPagination(20, 100)

// setupTestDB abre um SQLite em memória exclusivo do teste e migra o
// schema. cache=shared mantém o banco vivo entre as conexões do pool.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}

	if err := db.AutoMigrate(&AccountModel{}, &ListingModel{}); err != nil {
		t.Fatalf("falha ao migrar schema: %v", err)
	}

	return db
}

func seedAccount(t *testing.T, db *gorm.DB, emailStr string) *entities.Account {
	t.Helper()

	email, err := valueobjects.NewEmail(emailStr)
	if err != nil {
		t.Fatal(err)
	}

	account := &entities.Account{
		Name:           "Ana Silva",
		Email:          email,
		PasswordHash:   "$2a$10$fakehash",
		WhatsappNumber: "+212600000001",
		Role:           entities.RoleSeller,
	}

	repo := NewAccountRepository(db, testPagination)
	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("falha ao criar conta de teste: %v", err)
	}
	return account
}

func seedListing(t *testing.T, db *gorm.DB, listing *entities.Listing) *entities.Listing {
	t.Helper()

	repo := NewListingRepository(db, testPagination)
	if err := repo.Create(context.Background(), listing); err != nil {
		t.Fatalf("falha ao criar anúncio de teste: %v", err)
	}
	return listing
}

// timestamps com pelo menos 1s de diferença; o schema guarda Unix seconds
func createdAt(offsetSeconds int) time.Time {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(offsetSeconds) * time.Second)
}
