package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BoardFootCalculator stores one calculator run or pricing reference row.
// Public rows (IsPublic=true) double as the per-tree-type price list used
// by the cost estimator; private rows are saved runs in a user's history.
type BoardFootCalculator struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Diameter          float64         `gorm:"type:double precision;not null" json:"diameter"` // inches
	Height            float64         `gorm:"type:double precision;not null" json:"height"`   // feet
	TreeType          string          `gorm:"type:varchar(20);not null;index" json:"tree_type"` // TreeType
	PricePerBoardFoot decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price_per_board_foot"`
	IsPublic          bool            `gorm:"not null;default:false" json:"is_public"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// QuestionAndAnswer is a help/FAQ entry.
type QuestionAndAnswer struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text" json:"answer"`
	IsPrivate bool      `gorm:"not null;default:false" json:"is_private"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RoleModule grants a UserRole access to a ModuleName. The schema declares
// no uniqueness, so duplicate (role, module) rows are tolerated and any
// matching row counts as a grant.
type RoleModule struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Role       string    `gorm:"type:varchar(30);not null;index" json:"role"`              // UserRole
	ModuleName string    `gorm:"type:varchar(40);not null;index" json:"module_name"`       // ModuleName
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
