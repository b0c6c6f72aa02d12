package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem tracks the current stock level of a material, product or
// resource. Quantity is the materialized sum of the item's ledger entries
// and is only ever moved together with an InventoryLog insert, inside one
// transaction. Negative quantities are permitted by the schema.
type InventoryItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  int            `gorm:"type:int;not null;default:0" json:"quantity"`
	ItemType  string         `gorm:"type:varchar(20);not null;index" json:"item_type"` // ItemType
	Logs      []InventoryLog `gorm:"foreignKey:InventoryItemID" json:"logs,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// InventoryLog is an append-only stock movement. Rows are never updated or
// deleted once written; summing change_amount reconstructs an item's
// quantity history.
type InventoryLog struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Timestamp       time.Time      `gorm:"not null;default:now();index" json:"timestamp"`
	ChangeAmount    int            `gorm:"type:int;not null" json:"change_amount"`
	InventoryItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"inventory_item_id"`
	InventoryItem   *InventoryItem `gorm:"foreignKey:InventoryItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
