package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesRepository is the data access layer for customers and sales orders.
type SalesRepository interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	ListCustomers(ctx context.Context, page, limit int) ([]model.Customer, int64, error)

	CreateOrder(ctx context.Context, order *model.SalesOrder) error
	GetOrder(ctx context.Context, id uuid.UUID) (*model.SalesOrder, error)
	UpdateOrder(ctx context.Context, order *model.SalesOrder) error
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	ListOrders(ctx context.Context, page, limit int) ([]model.SalesOrder, int64, error)
}

type salesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return Translate(GetDB(ctx, r.db).Create(customer).Error)
}

func (r *salesRepository) GetCustomer(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := GetDB(ctx, r.db).Preload("Orders").First(&customer, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &customer, nil
}

func (r *salesRepository) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	return Translate(GetDB(ctx, r.db).Save(customer).Error)
}

func (r *salesRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Customer{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *salesRepository) ListCustomers(ctx context.Context, page, limit int) ([]model.Customer, int64, error) {
	var customers []model.Customer
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return customers, total, nil
}

func (r *salesRepository) CreateOrder(ctx context.Context, order *model.SalesOrder) error {
	return Translate(GetDB(ctx, r.db).Create(order).Error)
}

func (r *salesRepository) GetOrder(ctx context.Context, id uuid.UUID) (*model.SalesOrder, error) {
	var order model.SalesOrder
	if err := GetDB(ctx, r.db).Preload("Customer").First(&order, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &order, nil
}

func (r *salesRepository) UpdateOrder(ctx context.Context, order *model.SalesOrder) error {
	return Translate(GetDB(ctx, r.db).Save(order).Error)
}

func (r *salesRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := GetDB(ctx, r.db).Model(&model.SalesOrder{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *salesRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.SalesOrder{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *salesRepository) ListOrders(ctx context.Context, page, limit int) ([]model.SalesOrder, int64, error) {
	var orders []model.SalesOrder
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.SalesOrder{}).Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Preload("Customer").Order("created_at desc").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return orders, total, nil
}
