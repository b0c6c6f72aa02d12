package service

import (
	"context"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSalesRepo()
	svc := NewSalesService(repo)
	seller := uuid.NewString()

	customer, err := svc.CreateCustomer(ctx, CreateCustomerRequest{Name: "Timberline Builders"})
	require.NoError(t, err)

	t.Run("status defaults to pending", func(t *testing.T) {
		order, err := svc.CreateOrder(ctx, seller, CreateOrderRequest{
			CustomerID: customer.ID.String(),
			TotalPrice: "1499.90",
		})
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.Equal(t, "1499.90", order.TotalPrice)
	})

	t.Run("price is rounded to two places", func(t *testing.T) {
		order, err := svc.CreateOrder(ctx, seller, CreateOrderRequest{
			CustomerID: customer.ID.String(),
			TotalPrice: "100.005",
		})
		require.NoError(t, err)
		assert.Equal(t, "100.01", order.TotalPrice)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, seller, CreateOrderRequest{
			CustomerID: customer.ID.String(),
			TotalPrice: "10.00",
			Status:     "SHIPPED",
		})
		assert.ErrorIs(t, err, repository.ErrInvalidEnum)
	})

	t.Run("unparseable price is rejected", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, seller, CreateOrderRequest{
			CustomerID: customer.ID.String(),
			TotalPrice: "ten dollars",
		})
		assert.Error(t, err)
	})

	t.Run("unknown customer surfaces the constraint", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, seller, CreateOrderRequest{
			CustomerID: uuid.NewString(),
			TotalPrice: "10.00",
		})
		assert.ErrorIs(t, err, repository.ErrForeignKeyViolated)
	})
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSalesRepo()
	svc := NewSalesService(repo)

	customer, err := svc.CreateCustomer(ctx, CreateCustomerRequest{Name: "Millwork Co"})
	require.NoError(t, err)

	order, err := svc.CreateOrder(ctx, uuid.NewString(), CreateOrderRequest{
		CustomerID: customer.ID.String(),
		TotalPrice: "250.00",
	})
	require.NoError(t, err)

	t.Run("status moves freely within the domain", func(t *testing.T) {
		updated, err := svc.UpdateOrder(ctx, order.ID.String(), UpdateOrderRequest{Status: model.OrderStatusCancelled})
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusCancelled, updated.Status)

		updated, err = svc.UpdateOrder(ctx, order.ID.String(), UpdateOrderRequest{Status: model.OrderStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusCompleted, updated.Status)
	})

	t.Run("empty fields keep their values", func(t *testing.T) {
		updated, err := svc.UpdateOrder(ctx, order.ID.String(), UpdateOrderRequest{})
		require.NoError(t, err)
		assert.Equal(t, "250.00", updated.TotalPrice)
		assert.Equal(t, model.OrderStatusCompleted, updated.Status)
	})
}

func TestDeleteCustomerWithOrders(t *testing.T) {
	ctx := context.Background()
	svc := NewSalesService(newFakeSalesRepo())

	customer, err := svc.CreateCustomer(ctx, CreateCustomerRequest{Name: "Heartwood LLC"})
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, uuid.NewString(), CreateOrderRequest{
		CustomerID: customer.ID.String(),
		TotalPrice: "75.00",
	})
	require.NoError(t, err)

	err = svc.DeleteCustomer(ctx, customer.ID.String())
	assert.ErrorIs(t, err, repository.ErrForeignKeyViolated)
}
