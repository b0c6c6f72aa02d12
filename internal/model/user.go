package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the central account entity. The password column always holds a
// bcrypt hash; callers never persist plaintext credentials.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"type:varchar(255);not null" json:"-"` // Omit password hash from JSON responses
	Role      string         `gorm:"type:varchar(30);not null" json:"role"` // UserRole
	Employee  *Employee      `gorm:"foreignKey:UserID" json:"employee,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Employee is the optional staff profile attached to a User. The unique
// index on user_id enforces the at-most-one profile rule at the store.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Position  string    `gorm:"type:varchar(30);not null" json:"position"` // Position
	Shifts    []Shift   `gorm:"foreignKey:EmployeeID" json:"shifts,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
