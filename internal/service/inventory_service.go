package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
	ItemType string `json:"item_type" binding:"required"`
}

type UpdateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	ItemType string `json:"item_type" binding:"required"`
}

type AdjustStockRequest struct {
	ChangeAmount int        `json:"change_amount" binding:"required"`
	Timestamp    *time.Time `json:"timestamp"`
}

type ItemResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	ItemType string    `json:"item_type"`
}

type StockLogResponse struct {
	ID           uuid.UUID `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	ChangeAmount int       `json:"change_amount"`
	ItemID       uuid.UUID `json:"inventory_item_id"`
}

// InventoryService handles stock levels and the movement ledger.
type InventoryService interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error)
	GetItem(ctx context.Context, id string) (*ItemResponse, error)
	UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*ItemResponse, error)
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, page, limit int) ([]ItemResponse, int64, error)

	AdjustStock(ctx context.Context, id string, req AdjustStockRequest) (*ItemResponse, error)
	ListItemLogs(ctx context.Context, id string, page, limit int) ([]StockLogResponse, int64, error)
	AuditQuantity(ctx context.Context, id string) (stored int, derived int64, err error)
}

type inventoryService struct {
	repo      repository.InventoryRepository
	txManager repository.TransactionManager
	hub       *ws.Hub
}

func NewInventoryService(repo repository.InventoryRepository, txManager repository.TransactionManager, hub *ws.Hub) InventoryService {
	return &inventoryService{repo: repo, txManager: txManager, hub: hub}
}

func mapItem(item *model.InventoryItem) *ItemResponse {
	return &ItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: item.Quantity,
		ItemType: item.ItemType,
	}
}

func (s *inventoryService) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	if !model.ValidItemType(req.ItemType) {
		return nil, fmt.Errorf("%w: item type %q", repository.ErrInvalidEnum, req.ItemType)
	}

	item := &model.InventoryItem{
		Name:     req.Name,
		ItemType: req.ItemType,
	}

	// An opening balance enters through the ledger like any other movement.
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.CreateItem(txCtx, item); err != nil {
			return err
		}
		if req.Quantity != 0 {
			if _, err := s.repo.ApplyChange(txCtx, item.ID, req.Quantity, nil); err != nil {
				return err
			}
			item.Quantity = req.Quantity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapItem(item), nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (*ItemResponse, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid item id: %w", err)
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return mapItem(item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*ItemResponse, error) {
	if !model.ValidItemType(req.ItemType) {
		return nil, fmt.Errorf("%w: item type %q", repository.ErrInvalidEnum, req.ItemType)
	}

	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid item id: %w", err)
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.ItemType = req.ItemType

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return mapItem(item), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid item id: %w", err)
	}
	return s.repo.DeleteItem(ctx, itemID)
}

func (s *inventoryService) ListItems(ctx context.Context, page, limit int) ([]ItemResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	items, total, err := s.repo.ListItems(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, *mapItem(&item))
	}
	return responses, total, nil
}

func (s *inventoryService) AdjustStock(ctx context.Context, id string, req AdjustStockRequest) (*ItemResponse, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid item id: %w", err)
	}

	var item *model.InventoryItem
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.ApplyChange(txCtx, itemID, req.ChangeAmount, req.Timestamp); err != nil {
			return err
		}
		item, err = s.repo.GetItem(txCtx, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(ws.EventStockChanged, map[string]interface{}{
			"item_id":       item.ID.String(),
			"name":          item.Name,
			"quantity":      item.Quantity,
			"change_amount": req.ChangeAmount,
		})
	}

	return mapItem(item), nil
}

func (s *inventoryService) ListItemLogs(ctx context.Context, id string, page, limit int) ([]StockLogResponse, int64, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid item id: %w", err)
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	logs, total, err := s.repo.ListLogs(ctx, itemID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]StockLogResponse, 0, len(logs))
	for _, entry := range logs {
		responses = append(responses, StockLogResponse{
			ID:           entry.ID,
			Timestamp:    entry.Timestamp,
			ChangeAmount: entry.ChangeAmount,
			ItemID:       entry.InventoryItemID,
		})
	}
	return responses, total, nil
}

// AuditQuantity compares the stored counter against the ledger sum. The two
// agree unless someone has written quantity outside ApplyChange.
func (s *inventoryService) AuditQuantity(ctx context.Context, id string) (int, int64, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid item id: %w", err)
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return 0, 0, err
	}

	derived, err := s.repo.RecomputeQuantity(ctx, itemID)
	if err != nil {
		return 0, 0, err
	}
	return item.Quantity, derived, nil
}
