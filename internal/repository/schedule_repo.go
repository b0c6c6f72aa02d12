package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleRepository is the data access layer for employee shifts.
type ScheduleRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shift, error)
	Update(ctx context.Context, shift *model.Shift) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, limit int) ([]model.Shift, int64, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Shift, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, shift *model.Shift) error {
	return Translate(GetDB(ctx, r.db).Create(shift).Error)
}

func (r *scheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	var shift model.Shift
	if err := GetDB(ctx, r.db).First(&shift, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &shift, nil
}

func (r *scheduleRepository) Update(ctx context.Context, shift *model.Shift) error {
	return Translate(GetDB(ctx, r.db).Save(shift).Error)
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Shift{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *scheduleRepository) List(ctx context.Context, page, limit int) ([]model.Shift, int64, error) {
	var shifts []model.Shift
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Shift{}).Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Order("start_time").Offset(offset).Limit(limit).Find(&shifts).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return shifts, total, nil
}

func (r *scheduleRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Shift, error) {
	var shifts []model.Shift
	if err := GetDB(ctx, r.db).Where("employee_id = ?", employeeID).Order("start_time").Find(&shifts).Error; err != nil {
		return nil, Translate(err)
	}
	return shifts, nil
}
