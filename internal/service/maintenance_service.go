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

type CreateEquipmentRequest struct {
	Name                string `json:"name" binding:"required"`
	MaintenanceSchedule string `json:"maintenance_schedule"`
}

type CreateMaintenanceRequest struct {
	EquipmentID    string     `json:"equipment_id" binding:"required,uuid"`
	EmployeeID     string     `json:"employee_id" binding:"required,uuid"`
	Description    string     `json:"description" binding:"required"`
	CompletionDate *time.Time `json:"completion_date"`
}

type UpdateMaintenanceRequest struct {
	Description    string     `json:"description" binding:"required"`
	CompletionDate *time.Time `json:"completion_date"`
}

// PartUsage names one inventory item consumed during maintenance.
type PartUsage struct {
	ItemID       string `json:"item_id" binding:"required,uuid"`
	QuantityUsed int    `json:"quantity_used" binding:"required,gt=0"`
}

type PartUsageResult struct {
	ItemID            string `json:"item_id"`
	Applied           bool   `json:"applied"`
	RemainingQuantity int    `json:"remaining_quantity"`
}

type EquipmentResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	MaintenanceSchedule string    `json:"maintenance_schedule"`
}

type MaintenanceResponse struct {
	ID             uuid.UUID  `json:"id"`
	EquipmentID    uuid.UUID  `json:"equipment_id"`
	EmployeeID     uuid.UUID  `json:"employee_id"`
	Description    string     `json:"description"`
	CompletionDate *time.Time `json:"completion_date"`
	Pending        bool       `json:"pending"`
}

// MaintenanceService handles equipment and its maintenance records,
// including spare-part consumption against inventory.
type MaintenanceService interface {
	CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*EquipmentResponse, error)
	GetEquipment(ctx context.Context, id string) (*EquipmentResponse, error)
	ListEquipment(ctx context.Context, page, limit int) ([]EquipmentResponse, int64, error)
	DeleteEquipment(ctx context.Context, id string) error

	CreateRecord(ctx context.Context, req CreateMaintenanceRequest) (*MaintenanceResponse, error)
	GetRecord(ctx context.Context, id string) (*MaintenanceResponse, error)
	UpdateRecord(ctx context.Context, id string, req UpdateMaintenanceRequest) (*MaintenanceResponse, error)
	DeleteRecord(ctx context.Context, id string) error
	ListRecords(ctx context.Context, pendingOnly bool, page, limit int) ([]MaintenanceResponse, int64, error)
	CompleteRecord(ctx context.Context, id string, at time.Time) (*MaintenanceResponse, error)

	UseSpareParts(ctx context.Context, recordID string, parts []PartUsage) ([]PartUsageResult, error)
}

type maintenanceService struct {
	repo      repository.MaintenanceRepository
	inventory repository.InventoryRepository
	txManager repository.TransactionManager
	hub       *ws.Hub
}

func NewMaintenanceService(
	repo repository.MaintenanceRepository,
	inventory repository.InventoryRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) MaintenanceService {
	return &maintenanceService{repo: repo, inventory: inventory, txManager: txManager, hub: hub}
}

func mapEquipment(eq *model.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:                  eq.ID,
		Name:                eq.Name,
		MaintenanceSchedule: eq.MaintenanceSchedule,
	}
}

func mapMaintenance(rec *model.MaintenanceLog) *MaintenanceResponse {
	return &MaintenanceResponse{
		ID:             rec.ID,
		EquipmentID:    rec.EquipmentID,
		EmployeeID:     rec.EmployeeID,
		Description:    rec.Description,
		CompletionDate: rec.CompletionDate,
		Pending:        rec.Pending(),
	}
}

func (s *maintenanceService) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*EquipmentResponse, error) {
	eq := &model.Equipment{
		Name:                req.Name,
		MaintenanceSchedule: req.MaintenanceSchedule,
	}
	if err := s.repo.CreateEquipment(ctx, eq); err != nil {
		return nil, err
	}
	return mapEquipment(eq), nil
}

func (s *maintenanceService) GetEquipment(ctx context.Context, id string) (*EquipmentResponse, error) {
	eqID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid equipment id: %w", err)
	}

	eq, err := s.repo.GetEquipment(ctx, eqID)
	if err != nil {
		return nil, err
	}
	return mapEquipment(eq), nil
}

func (s *maintenanceService) ListEquipment(ctx context.Context, page, limit int) ([]EquipmentResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	eqs, total, err := s.repo.ListEquipment(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EquipmentResponse, 0, len(eqs))
	for _, eq := range eqs {
		responses = append(responses, *mapEquipment(&eq))
	}
	return responses, total, nil
}

func (s *maintenanceService) DeleteEquipment(ctx context.Context, id string) error {
	eqID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid equipment id: %w", err)
	}
	return s.repo.DeleteEquipment(ctx, eqID)
}

func (s *maintenanceService) CreateRecord(ctx context.Context, req CreateMaintenanceRequest) (*MaintenanceResponse, error) {
	equipmentID, err := uuid.Parse(req.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid equipment id: %w", err)
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id: %w", err)
	}

	rec := &model.MaintenanceLog{
		EquipmentID:    equipmentID,
		EmployeeID:     employeeID,
		Description:    req.Description,
		CompletionDate: req.CompletionDate,
	}

	if err := s.repo.CreateLog(ctx, rec); err != nil {
		return nil, err
	}
	return mapMaintenance(rec), nil
}

func (s *maintenanceService) GetRecord(ctx context.Context, id string) (*MaintenanceResponse, error) {
	recID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid record id: %w", err)
	}

	rec, err := s.repo.GetLog(ctx, recID)
	if err != nil {
		return nil, err
	}
	return mapMaintenance(rec), nil
}

func (s *maintenanceService) UpdateRecord(ctx context.Context, id string, req UpdateMaintenanceRequest) (*MaintenanceResponse, error) {
	recID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid record id: %w", err)
	}

	rec, err := s.repo.GetLog(ctx, recID)
	if err != nil {
		return nil, err
	}

	rec.Description = req.Description
	rec.CompletionDate = req.CompletionDate

	if err := s.repo.UpdateLog(ctx, rec); err != nil {
		return nil, err
	}
	return mapMaintenance(rec), nil
}

func (s *maintenanceService) DeleteRecord(ctx context.Context, id string) error {
	recID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid record id: %w", err)
	}
	return s.repo.DeleteLog(ctx, recID)
}

func (s *maintenanceService) ListRecords(ctx context.Context, pendingOnly bool, page, limit int) ([]MaintenanceResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	recs, total, err := s.repo.ListLogs(ctx, pendingOnly, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MaintenanceResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, *mapMaintenance(&rec))
	}
	return responses, total, nil
}

func (s *maintenanceService) CompleteRecord(ctx context.Context, id string, at time.Time) (*MaintenanceResponse, error) {
	recID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid record id: %w", err)
	}

	rec, err := s.repo.Complete(ctx, recID, at)
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(ws.EventMaintenanceCompleted, map[string]interface{}{
			"record_id":    rec.ID.String(),
			"equipment_id": rec.EquipmentID.String(),
		})
	}

	return mapMaintenance(rec), nil
}

// UseSpareParts decrements inventory through the ledger for each part
// consumed by a maintenance task. Parts with insufficient stock are
// reported as not applied; the rest proceed.
func (s *maintenanceService) UseSpareParts(ctx context.Context, recordID string, parts []PartUsage) ([]PartUsageResult, error) {
	recID, err := uuid.Parse(recordID)
	if err != nil {
		return nil, fmt.Errorf("invalid record id: %w", err)
	}
	if _, err := s.repo.GetLog(ctx, recID); err != nil {
		return nil, err
	}

	results := make([]PartUsageResult, 0, len(parts))
	for _, part := range parts {
		itemID, err := uuid.Parse(part.ItemID)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q: %w", part.ItemID, err)
		}

		result := PartUsageResult{ItemID: part.ItemID}
		err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
			item, err := s.inventory.GetItem(txCtx, itemID)
			if err != nil {
				return err
			}
			if item.Quantity < part.QuantityUsed {
				result.RemainingQuantity = item.Quantity
				return nil // insufficient stock is a reported outcome, not an abort
			}
			if _, err := s.inventory.ApplyChange(txCtx, itemID, -part.QuantityUsed, nil); err != nil {
				return err
			}
			result.Applied = true
			result.RemainingQuantity = item.Quantity - part.QuantityUsed
			return nil
		})
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}
