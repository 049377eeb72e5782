package postgres

// AccountModel é o model GORM para contas
type AccountModel struct {
	ID             string  `gorm:"type:uuid;primary_key"`
	Name           string  `gorm:"type:varchar(100);not null"`
	Email          string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"`
	WhatsappNumber string  `gorm:"type:varchar(32);not null"`
	AvatarURL      *string `gorm:"type:varchar(500)"`
	Location       *string `gorm:"type:varchar(255)"`
	Role           string  `gorm:"type:varchar(20);not null;index"`
	CreatedAt      int64   `gorm:"not null;index"`
	UpdatedAt      int64   `gorm:"not null"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

// ListingModel é o model GORM para anúncios.
// Images é uma lista ordenada de URLs serializada como JSON.
type ListingModel struct {
	ID          string        `gorm:"type:uuid;primary_key"`
	Title       string        `gorm:"type:varchar(200);not null"`
	Description string        `gorm:"type:text;not null"`
	Price       float64       `gorm:"type:numeric(12,2);not null"`
	Currency    string        `gorm:"type:varchar(10);not null;index"`
	Category    string        `gorm:"type:varchar(100);not null;index"`
	Location    string        `gorm:"type:varchar(100);not null"`
	Images      []string      `gorm:"serializer:json;not null"`
	IsActive    bool          `gorm:"not null;default:true;index"`
	OwnerID     string        `gorm:"type:uuid;not null;index"`
	Owner       *AccountModel `gorm:"foreignKey:OwnerID"`
	CreatedAt   int64         `gorm:"not null;index"`
	UpdatedAt   int64         `gorm:"not null"`
}

func (ListingModel) TableName() string {
	return "listings"
}
