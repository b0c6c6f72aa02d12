package repository

import (
	"context"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceRepository is the data access layer for equipment and its
// maintenance records.
type MaintenanceRepository interface {
	CreateEquipment(ctx context.Context, eq *model.Equipment) error
	GetEquipment(ctx context.Context, id uuid.UUID) (*model.Equipment, error)
	UpdateEquipment(ctx context.Context, eq *model.Equipment) error
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
	ListEquipment(ctx context.Context, page, limit int) ([]model.Equipment, int64, error)

	CreateLog(ctx context.Context, rec *model.MaintenanceLog) error
	GetLog(ctx context.Context, id uuid.UUID) (*model.MaintenanceLog, error)
	UpdateLog(ctx context.Context, rec *model.MaintenanceLog) error
	DeleteLog(ctx context.Context, id uuid.UUID) error
	ListLogs(ctx context.Context, pendingOnly bool, page, limit int) ([]model.MaintenanceLog, int64, error)
	ListLogsByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]model.MaintenanceLog, error)
	// Complete sets the completion date. Repeating the call with the same
	// timestamp is a no-op, so retries are safe.
	Complete(ctx context.Context, id uuid.UUID, at time.Time) (*model.MaintenanceLog, error)
}

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) CreateEquipment(ctx context.Context, eq *model.Equipment) error {
	return Translate(GetDB(ctx, r.db).Create(eq).Error)
}

func (r *maintenanceRepository) GetEquipment(ctx context.Context, id uuid.UUID) (*model.Equipment, error) {
	var eq model.Equipment
	if err := GetDB(ctx, r.db).Preload("Logs").First(&eq, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &eq, nil
}

func (r *maintenanceRepository) UpdateEquipment(ctx context.Context, eq *model.Equipment) error {
	return Translate(GetDB(ctx, r.db).Save(eq).Error)
}

func (r *maintenanceRepository) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Equipment{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *maintenanceRepository) ListEquipment(ctx context.Context, page, limit int) ([]model.Equipment, int64, error) {
	var eqs []model.Equipment
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Equipment{}).Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Offset(offset).Limit(limit).Find(&eqs).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return eqs, total, nil
}

func (r *maintenanceRepository) CreateLog(ctx context.Context, rec *model.MaintenanceLog) error {
	return Translate(GetDB(ctx, r.db).Create(rec).Error)
}

func (r *maintenanceRepository) GetLog(ctx context.Context, id uuid.UUID) (*model.MaintenanceLog, error) {
	var rec model.MaintenanceLog
	if err := GetDB(ctx, r.db).First(&rec, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &rec, nil
}

func (r *maintenanceRepository) UpdateLog(ctx context.Context, rec *model.MaintenanceLog) error {
	return Translate(GetDB(ctx, r.db).Save(rec).Error)
}

func (r *maintenanceRepository) DeleteLog(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.MaintenanceLog{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *maintenanceRepository) ListLogs(ctx context.Context, pendingOnly bool, page, limit int) ([]model.MaintenanceLog, int64, error) {
	var recs []model.MaintenanceLog
	var total int64

	db := GetDB(ctx, r.db).Model(&model.MaintenanceLog{})
	if pendingOnly {
		db = db.Where("completion_date IS NULL")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&recs).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return recs, total, nil
}

func (r *maintenanceRepository) ListLogsByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]model.MaintenanceLog, error) {
	var recs []model.MaintenanceLog
	if err := GetDB(ctx, r.db).Where("equipment_id = ?", equipmentID).Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, Translate(err)
	}
	return recs, nil
}

func (r *maintenanceRepository) Complete(ctx context.Context, id uuid.UUID, at time.Time) (*model.MaintenanceLog, error) {
	var rec model.MaintenanceLog
	err := GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			return err
		}
		if rec.CompletionDate != nil && rec.CompletionDate.Equal(at) {
			return nil // already closed at this timestamp
		}
		rec.CompletionDate = &at
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &rec, nil
}
