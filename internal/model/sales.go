package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer is a buyer of lumber products.
type Customer struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	ContactInfo string         `gorm:"type:text" json:"contact_info"`
	Orders      []SalesOrder   `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// SalesOrder records a sale owned by the user who created it. TotalPrice is
// an exact decimal(18,2); binary floats would drift across round-trips.
type SalesOrder struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_price"`
	Status     string          `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"` // OrderStatus
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   *Customer       `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer,omitempty"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User       *User           `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
