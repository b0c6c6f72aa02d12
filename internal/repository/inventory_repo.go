package repository

import (
	"context"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryRepository is the data access layer for items and their
// append-only movement ledger. The ledger has no update or delete methods
// on purpose: rows are immutable once written.
type InventoryRepository interface {
	CreateItem(ctx context.Context, item *model.InventoryItem) error
	GetItem(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	UpdateItem(ctx context.Context, item *model.InventoryItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, page, limit int) ([]model.InventoryItem, int64, error)

	// ApplyChange appends a ledger row and moves the item's quantity by
	// delta in a single transaction, so the stored counter can never drift
	// from the log history.
	ApplyChange(ctx context.Context, itemID uuid.UUID, delta int, at *time.Time) (*model.InventoryLog, error)
	ListLogs(ctx context.Context, itemID uuid.UUID, page, limit int) ([]model.InventoryLog, int64, error)
	// RecomputeQuantity sums the ledger for drift audits. It is never the
	// write path.
	RecomputeQuantity(ctx context.Context, itemID uuid.UUID) (int64, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) CreateItem(ctx context.Context, item *model.InventoryItem) error {
	return Translate(GetDB(ctx, r.db).Create(item).Error)
}

func (r *inventoryRepository) GetItem(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := GetDB(ctx, r.db).First(&item, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &item, nil
}

// UpdateItem saves name/type edits. Quantity changes must go through
// ApplyChange so the ledger stays authoritative.
func (r *inventoryRepository) UpdateItem(ctx context.Context, item *model.InventoryItem) error {
	return Translate(GetDB(ctx, r.db).Model(item).Updates(map[string]interface{}{
		"name":      item.Name,
		"item_type": item.ItemType,
	}).Error)
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.InventoryItem{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) ListItems(ctx context.Context, page, limit int) ([]model.InventoryItem, int64, error) {
	var items []model.InventoryItem
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.InventoryItem{}).Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return items, total, nil
}

func (r *inventoryRepository) ApplyChange(ctx context.Context, itemID uuid.UUID, delta int, at *time.Time) (*model.InventoryLog, error) {
	entry := &model.InventoryLog{
		ChangeAmount:    delta,
		InventoryItemID: itemID,
	}
	if at != nil {
		entry.Timestamp = *at
	}

	// Transaction joins an ambient tx from RunInTx as a savepoint, or opens
	// its own when called standalone.
	err := GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		res := tx.Model(&model.InventoryItem{}).
			Where("id = ?", itemID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, Translate(err)
	}
	return entry, nil
}

func (r *inventoryRepository) ListLogs(ctx context.Context, itemID uuid.UUID, page, limit int) ([]model.InventoryLog, int64, error) {
	var logs []model.InventoryLog
	var total int64

	db := GetDB(ctx, r.db).Where("inventory_item_id = ?", itemID)
	if err := db.Model(&model.InventoryLog{}).Count(&total).Error; err != nil {
		return nil, 0, Translate(err)
	}

	offset := (page - 1) * limit
	if err := db.Order("timestamp desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, Translate(err)
	}

	return logs, total, nil
}

func (r *inventoryRepository) RecomputeQuantity(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var sum *int64
	err := GetDB(ctx, r.db).Model(&model.InventoryLog{}).
		Where("inventory_item_id = ?", itemID).
		Select("SUM(change_amount)").
		Scan(&sum).Error
	if err != nil {
		return 0, Translate(err)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
