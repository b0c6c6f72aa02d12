package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DTOs for Request validation
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
	Role  string `json:"role"`
}

type CreateEmployeeRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Position  string `json:"position" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse returns a User without exposing the credential hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShiftView struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type EmployeeResponse struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Position  string      `json:"position"`
	Shifts    []ShiftView `json:"shifts,omitempty"`
}

// AccountService defines the business logic for users and employee profiles.
type AccountService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	GetUserByID(ctx context.Context, id string) (*UserResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*UserResponse, error)
	ListUsers(ctx context.Context, page, limit int) ([]UserResponse, int64, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id string) error

	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployeeByID(ctx context.Context, id string) (*EmployeeResponse, error)
	ListEmployees(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error)
}

type accountService struct {
	repo repository.AccountRepository
}

// NewAccountService returns a new instance of AccountService
func NewAccountService(repo repository.AccountRepository) AccountService {
	return &accountService{repo: repo}
}

func mapUser(user *model.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func mapEmployee(e *model.Employee) *EmployeeResponse {
	res := &EmployeeResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Position:  e.Position,
	}
	for _, s := range e.Shifts {
		res.Shifts = append(res.Shifts, ShiftView{ID: s.ID, StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return res
}

func (s *accountService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	if !model.ValidUserRole(req.Role) {
		return nil, fmt.Errorf("%w: role %q", repository.ErrInvalidEnum, req.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &model.User{
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}

	// Uniqueness is enforced by the email index at write time; a concurrent
	// duplicate surfaces as ErrDuplicateKey rather than slipping past a
	// read-then-write check.
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return mapUser(user), nil
}

func (s *accountService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &TokenResponse{Token: tokenString}, nil
}

func (s *accountService) GetUserByID(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapUser(user), nil
}

func (s *accountService) GetUserByEmail(ctx context.Context, email string) (*UserResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return mapUser(user), nil
}

func (s *accountService) ListUsers(ctx context.Context, page, limit int) ([]UserResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	users, total, err := s.repo.ListUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, *mapUser(&u))
	}
	return responses, total, nil
}

func (s *accountService) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Role != "" {
		if !model.ValidUserRole(req.Role) {
			return nil, fmt.Errorf("%w: role %q", repository.ErrInvalidEnum, req.Role)
		}
		user.Role = req.Role
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return mapUser(user), nil
}

func (s *accountService) DeleteUser(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	return s.repo.DeleteUser(ctx, userID)
}

func (s *accountService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	if !model.ValidPosition(req.Position) {
		return nil, fmt.Errorf("%w: position %q", repository.ErrInvalidEnum, req.Position)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	employee := &model.Employee{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
	}

	// FK + unique user_id constraints reject missing users and second
	// profiles atomically.
	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return mapEmployee(employee), nil
}

func (s *accountService) GetEmployeeByID(ctx context.Context, id string) (*EmployeeResponse, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id: %w", err)
	}

	employee, err := s.repo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapEmployee(employee), nil
}

func (s *accountService) ListEmployees(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	employees, total, err := s.repo.ListEmployees(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, *mapEmployee(&e))
	}
	return responses, total, nil
}
