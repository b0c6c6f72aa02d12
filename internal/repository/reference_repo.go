package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceRepository is the data access layer for the standalone lookup
// tables: board-foot calculator rows, Q&A entries and role/module grants.
type ReferenceRepository interface {
	CreateCalculation(ctx context.Context, calc *model.BoardFootCalculator) error
	GetCalculation(ctx context.Context, id uuid.UUID) (*model.BoardFootCalculator, error)
	DeleteCalculation(ctx context.Context, id uuid.UUID) error
	ListCalculations(ctx context.Context, publicOnly bool, page, limit int) ([]model.BoardFootCalculator, int64, error)
	// FindPricingByTreeType returns the public pricing reference row for a
	// tree type.
	FindPricingByTreeType(ctx context.Context, treeType string) (*model.BoardFootCalculator, error)

	CreateQuestion(ctx context.Context, qa *model.QuestionAndAnswer) error
	GetQuestion(ctx context.Context, id uuid.UUID) (*model.QuestionAndAnswer, error)
	UpdateQuestion(ctx context.Context, qa *model.QuestionAndAnswer) error
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
	ListQuestions(ctx context.Context, includePrivate bool, page, limit int) ([]model.QuestionAndAnswer, int64, error)

	CreateRoleModule(ctx context.Context, rm *model.RoleModule) error
	DeleteRoleModule(ctx context.Context, id uuid.UUID) error
	ListRoleModules(ctx context.Context) ([]model.RoleModule, error)
	HasAccess(ctx context.Context, role, moduleName string) (bool, error)
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) CreateCalculation(ctx context.Context, calc *model.BoardFootCalculator) error {
	return Translate(GetDB(ctx, r.db).Create(calc).Error)
}

func (r *referenceRepository) GetCalculation(ctx context.Context, id uuid.UUID) (*model.BoardFootCalculator, error) {
	var calc model.BoardFootCalculator
	if err := GetDB(ctx, r.db).First(&calc, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &calc, nil
}

func (r *referenceRepository) DeleteCalculation(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.BoardFootCalculator{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *referenceRepository) ListCalculations(ctx context.Context, publicOnly bool, page, limit int) ([]model.BoardFootCalculator, int64, error) {
	var calcs []model.BoardFootCalculator
	var total int64

	db := GetDB(ctx, r.db).Model(&model.BoardFootCalculator{})
	if publicOnly {
		db = db.Where("is_public = ?", true)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&calcs).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return calcs, total, nil
}

func (r *referenceRepository) FindPricingByTreeType(ctx context.Context, treeType string) (*model.BoardFootCalculator, error) {
	var calc model.BoardFootCalculator
	err := GetDB(ctx, r.db).
		Where("tree_type = ? AND is_public = ?", treeType, true).
		Order("created_at desc").
		First(&calc).Error
	if err != nil {
		return nil, Translate(err)
	}
	return &calc, nil
}

func (r *referenceRepository) CreateQuestion(ctx context.Context, qa *model.QuestionAndAnswer) error {
	return Translate(GetDB(ctx, r.db).Create(qa).Error)
}

func (r *referenceRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*model.QuestionAndAnswer, error) {
	var qa model.QuestionAndAnswer
	if err := GetDB(ctx, r.db).First(&qa, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &qa, nil
}

func (r *referenceRepository) UpdateQuestion(ctx context.Context, qa *model.QuestionAndAnswer) error {
	return Translate(GetDB(ctx, r.db).Save(qa).Error)
}

func (r *referenceRepository) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.QuestionAndAnswer{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *referenceRepository) ListQuestions(ctx context.Context, includePrivate bool, page, limit int) ([]model.QuestionAndAnswer, int64, error) {
	var qas []model.QuestionAndAnswer
	var total int64

	db := GetDB(ctx, r.db).Model(&model.QuestionAndAnswer{})
	if !includePrivate {
		db = db.Where("is_private = ?", false)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at").Offset(offset).Limit(limit).Find(&qas).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return qas, total, nil
}

func (r *referenceRepository) CreateRoleModule(ctx context.Context, rm *model.RoleModule) error {
	return Translate(GetDB(ctx, r.db).Create(rm).Error)
}

func (r *referenceRepository) DeleteRoleModule(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.RoleModule{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *referenceRepository) ListRoleModules(ctx context.Context) ([]model.RoleModule, error) {
	var rms []model.RoleModule
	if err := GetDB(ctx, r.db).Order("role, module_name").Find(&rms).Error; err != nil {
		return nil, Translate(err)
	}
	return rms, nil
}

func (r *referenceRepository) HasAccess(ctx context.Context, role, moduleName string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.RoleModule{}).
		Where("role = ? AND module_name = ?", role, moduleName).
		Count(&count).Error
	if err != nil {
		return false, Translate(err)
	}
	return count > 0, nil
}
