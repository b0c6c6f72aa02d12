package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

type CreateQuestionRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer"`
	IsPrivate bool   `json:"is_private"`
}

type UpdateQuestionRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer"`
	IsPrivate bool   `json:"is_private"`
}

type QuestionResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	IsPrivate bool      `json:"is_private"`
}

type CreateGrantRequest struct {
	Role       string `json:"role" binding:"required"`
	ModuleName string `json:"module_name" binding:"required"`
}

type GrantResponse struct {
	ID         uuid.UUID `json:"id"`
	Role       string    `json:"role"`
	ModuleName string    `json:"module_name"`
}

// ReferenceService handles the Q&A help table and the role/module access
// matrix.
type ReferenceService interface {
	CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*QuestionResponse, error)
	GetQuestion(ctx context.Context, id string) (*QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id string, req UpdateQuestionRequest) (*QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id string) error
	ListQuestions(ctx context.Context, includePrivate bool, page, limit int) ([]QuestionResponse, int64, error)

	CreateGrant(ctx context.Context, req CreateGrantRequest) (*GrantResponse, error)
	DeleteGrant(ctx context.Context, id string) error
	ListGrants(ctx context.Context) ([]GrantResponse, error)
	HasAccess(ctx context.Context, role, moduleName string) (bool, error)
}

type referenceService struct {
	repo repository.ReferenceRepository
}

func NewReferenceService(repo repository.ReferenceRepository) ReferenceService {
	return &referenceService{repo: repo}
}

func mapQuestion(qa *model.QuestionAndAnswer) *QuestionResponse {
	return &QuestionResponse{
		ID:        qa.ID,
		Question:  qa.Question,
		Answer:    qa.Answer,
		IsPrivate: qa.IsPrivate,
	}
}

func (s *referenceService) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*QuestionResponse, error) {
	qa := &model.QuestionAndAnswer{
		Question:  req.Question,
		Answer:    req.Answer,
		IsPrivate: req.IsPrivate,
	}
	if err := s.repo.CreateQuestion(ctx, qa); err != nil {
		return nil, err
	}
	return mapQuestion(qa), nil
}

func (s *referenceService) GetQuestion(ctx context.Context, id string) (*QuestionResponse, error) {
	qaID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid question id: %w", err)
	}

	qa, err := s.repo.GetQuestion(ctx, qaID)
	if err != nil {
		return nil, err
	}
	return mapQuestion(qa), nil
}

func (s *referenceService) UpdateQuestion(ctx context.Context, id string, req UpdateQuestionRequest) (*QuestionResponse, error) {
	qaID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid question id: %w", err)
	}

	qa, err := s.repo.GetQuestion(ctx, qaID)
	if err != nil {
		return nil, err
	}

	qa.Question = req.Question
	qa.Answer = req.Answer
	qa.IsPrivate = req.IsPrivate

	if err := s.repo.UpdateQuestion(ctx, qa); err != nil {
		return nil, err
	}
	return mapQuestion(qa), nil
}

func (s *referenceService) DeleteQuestion(ctx context.Context, id string) error {
	qaID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid question id: %w", err)
	}
	return s.repo.DeleteQuestion(ctx, qaID)
}

func (s *referenceService) ListQuestions(ctx context.Context, includePrivate bool, page, limit int) ([]QuestionResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	qas, total, err := s.repo.ListQuestions(ctx, includePrivate, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]QuestionResponse, 0, len(qas))
	for _, qa := range qas {
		responses = append(responses, *mapQuestion(&qa))
	}
	return responses, total, nil
}

func (s *referenceService) CreateGrant(ctx context.Context, req CreateGrantRequest) (*GrantResponse, error) {
	if !model.ValidUserRole(req.Role) {
		return nil, fmt.Errorf("%w: role %q", repository.ErrInvalidEnum, req.Role)
	}
	if !model.ValidModuleName(req.ModuleName) {
		return nil, fmt.Errorf("%w: module %q", repository.ErrInvalidEnum, req.ModuleName)
	}

	rm := &model.RoleModule{
		Role:       req.Role,
		ModuleName: req.ModuleName,
	}
	if err := s.repo.CreateRoleModule(ctx, rm); err != nil {
		return nil, err
	}
	return &GrantResponse{ID: rm.ID, Role: rm.Role, ModuleName: rm.ModuleName}, nil
}

func (s *referenceService) DeleteGrant(ctx context.Context, id string) error {
	rmID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid grant id: %w", err)
	}
	return s.repo.DeleteRoleModule(ctx, rmID)
}

func (s *referenceService) ListGrants(ctx context.Context) ([]GrantResponse, error) {
	rms, err := s.repo.ListRoleModules(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GrantResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, GrantResponse{ID: rm.ID, Role: rm.Role, ModuleName: rm.ModuleName})
	}
	return responses, nil
}

func (s *referenceService) HasAccess(ctx context.Context, role, moduleName string) (bool, error) {
	return s.repo.HasAccess(ctx, role, moduleName)
}
