package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository is the data access layer for the identity cluster
// (users and their optional employee profiles). Email uniqueness and the
// one-profile-per-user rule are enforced by the store's unique indexes, not
// by read-then-write checks.
type AccountRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]model.User, int64, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	CreateEmployee(ctx context.Context, employee *model.Employee) error
	GetEmployeeByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	GetEmployeeByUserID(ctx context.Context, userID uuid.UUID) (*model.Employee, error)
	ListEmployees(ctx context.Context, page, limit int) ([]model.Employee, int64, error)
	UpdateEmployee(ctx context.Context, employee *model.Employee) error
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns a new instance of AccountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateUser(ctx context.Context, user *model.User) error {
	return Translate(GetDB(ctx, r.db).Create(user).Error)
}

func (r *accountRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).Preload("Employee").First(&user, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

func (r *accountRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "email = ?", email).Error; err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

func (r *accountRepository) ListUsers(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return users, total, nil
}

// UpdateUser saves the full row; gorm's autoUpdateTime refreshes updated_at
// inside the same statement.
func (r *accountRepository) UpdateUser(ctx context.Context, user *model.User) error {
	return Translate(GetDB(ctx, r.db).Save(user).Error)
}

func (r *accountRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *accountRepository) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	return Translate(GetDB(ctx, r.db).Create(employee).Error)
}

func (r *accountRepository) GetEmployeeByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := GetDB(ctx, r.db).Preload("Shifts").First(&employee, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &employee, nil
}

func (r *accountRepository) GetEmployeeByUserID(ctx context.Context, userID uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := GetDB(ctx, r.db).Preload("Shifts").First(&employee, "user_id = ?", userID).Error; err != nil {
		return nil, Translate(err)
	}
	return &employee, nil
}

func (r *accountRepository) ListEmployees(ctx context.Context, page, limit int) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Offset(offset).Limit(limit).Find(&employees).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return employees, total, nil
}

func (r *accountRepository) UpdateEmployee(ctx context.Context, employee *model.Employee) error {
	return Translate(GetDB(ctx, r.db).Save(employee).Error)
}
