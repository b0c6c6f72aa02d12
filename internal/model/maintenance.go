package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Equipment is a sawmill machine or tool under a maintenance plan.
type Equipment struct {
	ID                  uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                string           `gorm:"type:varchar(255);not null" json:"name"`
	MaintenanceSchedule string           `gorm:"type:text" json:"maintenance_schedule"`
	Logs                []MaintenanceLog `gorm:"foreignKey:EquipmentID" json:"logs,omitempty"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt   `gorm:"index" json:"-"`
}

// MaintenanceLog ties an equipment unit to the responsible employee.
// A nil CompletionDate marks the task as open/scheduled; setting it closes
// the task. No further state machine exists.
type MaintenanceLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Description    string     `gorm:"type:text;not null" json:"description"`
	CompletionDate *time.Time `gorm:"index" json:"completion_date"`
	EquipmentID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"equipment_id"`
	Equipment      *Equipment `gorm:"foreignKey:EquipmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	Employee       *Employee  `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Pending reports whether the maintenance task is still open.
func (m *MaintenanceLog) Pending() bool {
	return m.CompletionDate == nil
}
