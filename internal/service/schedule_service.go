package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

type CreateShiftRequest struct {
	EmployeeID string    `json:"employee_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
}

type UpdateShiftRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ShiftResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// ScheduleService handles shift planning. Overlapping shifts are not
// rejected here; callers that need overlap rules enforce them above this
// layer.
type ScheduleService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (*ShiftResponse, error)
	GetShift(ctx context.Context, id string) (*ShiftResponse, error)
	UpdateShift(ctx context.Context, id string, req UpdateShiftRequest) (*ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error
	ListShifts(ctx context.Context, page, limit int) ([]ShiftResponse, int64, error)
	ListShiftsByEmployee(ctx context.Context, employeeID string) ([]ShiftResponse, error)
}

type scheduleService struct {
	repo repository.ScheduleRepository
}

func NewScheduleService(repo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{repo: repo}
}

func mapShift(s *model.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

func (s *scheduleService) CreateShift(ctx context.Context, req CreateShiftRequest) (*ShiftResponse, error) {
	if req.EndTime.Before(req.StartTime) {
		return nil, errors.New("shift end time precedes start time")
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id: %w", err)
	}

	shift := &model.Shift{
		EmployeeID: employeeID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	if err := s.repo.Create(ctx, shift); err != nil {
		return nil, err
	}
	return mapShift(shift), nil
}

func (s *scheduleService) GetShift(ctx context.Context, id string) (*ShiftResponse, error) {
	shiftID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid shift id: %w", err)
	}

	shift, err := s.repo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	return mapShift(shift), nil
}

func (s *scheduleService) UpdateShift(ctx context.Context, id string, req UpdateShiftRequest) (*ShiftResponse, error) {
	if req.EndTime.Before(req.StartTime) {
		return nil, errors.New("shift end time precedes start time")
	}

	shiftID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid shift id: %w", err)
	}

	shift, err := s.repo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime

	if err := s.repo.Update(ctx, shift); err != nil {
		return nil, err
	}
	return mapShift(shift), nil
}

func (s *scheduleService) DeleteShift(ctx context.Context, id string) error {
	shiftID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid shift id: %w", err)
	}
	return s.repo.Delete(ctx, shiftID)
}

func (s *scheduleService) ListShifts(ctx context.Context, page, limit int) ([]ShiftResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	shifts, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, *mapShift(&shift))
	}
	return responses, total, nil
}

func (s *scheduleService) ListShiftsByEmployee(ctx context.Context, employeeID string) ([]ShiftResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id: %w", err)
	}

	shifts, err := s.repo.ListByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, *mapShift(&shift))
	}
	return responses, nil
}
