package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contact_info"`
}

type CreateOrderRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	TotalPrice string `json:"total_price" binding:"required"`
	Status     string `json:"status"`
}

type UpdateOrderRequest struct {
	TotalPrice string `json:"total_price"`
	Status     string `json:"status"`
}

type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactInfo string    `json:"contact_info"`
}

type OrderResponse struct {
	ID         uuid.UUID `json:"id"`
	TotalPrice string    `json:"total_price"`
	Status     string    `json:"status"`
	CustomerID uuid.UUID `json:"customer_id"`
	UserID     uuid.UUID `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// SalesService handles customers and sales orders. Status transition rules
// live above this layer; the store accepts any member of the status domain.
type SalesService interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (*CustomerResponse, error)
	ListCustomers(ctx context.Context, page, limit int) ([]CustomerResponse, int64, error)
	DeleteCustomer(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*OrderResponse, error)
	UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (*OrderResponse, error)
	DeleteOrder(ctx context.Context, id string) error
	ListOrders(ctx context.Context, page, limit int) ([]OrderResponse, int64, error)
}

type salesService struct {
	repo repository.SalesRepository
}

func NewSalesService(repo repository.SalesRepository) SalesService {
	return &salesService{repo: repo}
}

func mapCustomer(c *model.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		ContactInfo: c.ContactInfo,
	}
}

func mapOrder(o *model.SalesOrder) *OrderResponse {
	return &OrderResponse{
		ID:         o.ID,
		TotalPrice: o.TotalPrice.StringFixed(2),
		Status:     o.Status,
		CustomerID: o.CustomerID,
		UserID:     o.UserID,
		CreatedAt:  o.CreatedAt,
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", raw, err)
	}
	// Currency fields carry exactly two decimal places end to end.
	return price.Round(2), nil
}

func (s *salesService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer := &model.Customer{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	}
	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return mapCustomer(customer), nil
}

func (s *salesService) GetCustomer(ctx context.Context, id string) (*CustomerResponse, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}

	customer, err := s.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return mapCustomer(customer), nil
}

func (s *salesService) ListCustomers(ctx context.Context, page, limit int) ([]CustomerResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	customers, total, err := s.repo.ListCustomers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, *mapCustomer(&c))
	}
	return responses, total, nil
}

func (s *salesService) DeleteCustomer(ctx context.Context, id string) error {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid customer id: %w", err)
	}
	return s.repo.DeleteCustomer(ctx, customerID)
}

func (s *salesService) CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*OrderResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}

	price, err := parsePrice(req.TotalPrice)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}
	if !model.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: order status %q", repository.ErrInvalidEnum, status)
	}

	order := &model.SalesOrder{
		TotalPrice: price,
		Status:     status,
		CustomerID: customerID,
		UserID:     ownerID,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return mapOrder(order), nil
}

func (s *salesService) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order id: %w", err)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return mapOrder(order), nil
}

func (s *salesService) UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (*OrderResponse, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order id: %w", err)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.TotalPrice != "" {
		price, err := parsePrice(req.TotalPrice)
		if err != nil {
			return nil, err
		}
		order.TotalPrice = price
	}
	if req.Status != "" {
		if !model.ValidOrderStatus(req.Status) {
			return nil, fmt.Errorf("%w: order status %q", repository.ErrInvalidEnum, req.Status)
		}
		order.Status = req.Status
	}

	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	return mapOrder(order), nil
}

func (s *salesService) DeleteOrder(ctx context.Context, id string) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}
	return s.repo.DeleteOrder(ctx, orderID)
}

func (s *salesService) ListOrders(ctx context.Context, page, limit int) ([]OrderResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	orders, total, err := s.repo.ListOrders(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, *mapOrder(&o))
	}
	return responses, total, nil
}
