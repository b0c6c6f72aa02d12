package service

import (
	"context"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryServiceForTest() (*fakeInventoryRepo, InventoryService) {
	repo := newFakeInventoryRepo()
	return repo, NewInventoryService(repo, fakeTxManager{}, nil)
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("opening balance goes through the ledger", func(t *testing.T) {
		repo, svc := newInventoryServiceForTest()

		item, err := svc.CreateItem(ctx, CreateItemRequest{
			Name:     "Saw blades",
			Quantity: 40,
			ItemType: model.ItemTypeResource,
		})
		require.NoError(t, err)
		assert.Equal(t, 40, item.Quantity)

		require.Len(t, repo.logs, 1)
		assert.Equal(t, 40, repo.logs[0].ChangeAmount)
		assert.Equal(t, item.ID, repo.logs[0].InventoryItemID)
	})

	t.Run("zero opening balance writes no ledger row", func(t *testing.T) {
		repo, svc := newInventoryServiceForTest()

		item, err := svc.CreateItem(ctx, CreateItemRequest{
			Name:     "Oak planks",
			ItemType: model.ItemTypeProduct,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, item.Quantity)
		assert.Empty(t, repo.logs)
	})

	t.Run("unknown item type is rejected", func(t *testing.T) {
		_, svc := newInventoryServiceForTest()

		_, err := svc.CreateItem(ctx, CreateItemRequest{Name: "x", ItemType: "CONSUMABLE"})
		assert.ErrorIs(t, err, repository.ErrInvalidEnum)
	})
}

func TestAdjustStock(t *testing.T) {
	ctx := context.Background()
	repo, svc := newInventoryServiceForTest()

	item, err := svc.CreateItem(ctx, CreateItemRequest{
		Name:     "Hydraulic oil",
		Quantity: 10,
		ItemType: model.ItemTypeResource,
	})
	require.NoError(t, err)

	t.Run("positive and negative movements accumulate", func(t *testing.T) {
		updated, err := svc.AdjustStock(ctx, item.ID.String(), AdjustStockRequest{ChangeAmount: 5})
		require.NoError(t, err)
		assert.Equal(t, 15, updated.Quantity)

		updated, err = svc.AdjustStock(ctx, item.ID.String(), AdjustStockRequest{ChangeAmount: -8})
		require.NoError(t, err)
		assert.Equal(t, 7, updated.Quantity)

		assert.Len(t, repo.logs, 3) // opening balance plus two adjustments
	})

	t.Run("stored quantity matches the ledger sum", func(t *testing.T) {
		stored, derived, err := svc.AuditQuantity(ctx, item.ID.String())
		require.NoError(t, err)
		assert.EqualValues(t, stored, derived)
	})

	t.Run("unknown item surfaces not found", func(t *testing.T) {
		_, err := svc.AdjustStock(ctx, "00000000-0000-0000-0000-000000000001", AdjustStockRequest{ChangeAmount: 1})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("malformed id is rejected before the store is touched", func(t *testing.T) {
		_, err := svc.AdjustStock(ctx, "not-a-uuid", AdjustStockRequest{ChangeAmount: 1})
		assert.Error(t, err)
	})
}

func TestListItemLogs(t *testing.T) {
	ctx := context.Background()
	_, svc := newInventoryServiceForTest()

	item, err := svc.CreateItem(ctx, CreateItemRequest{
		Name:     "Chains",
		Quantity: 3,
		ItemType: model.ItemTypeResource,
	})
	require.NoError(t, err)

	_, err = svc.AdjustStock(ctx, item.ID.String(), AdjustStockRequest{ChangeAmount: -1})
	require.NoError(t, err)

	logs, total, err := svc.ListItemLogs(ctx, item.ID.String(), 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, logs, 2)
	for _, entry := range logs {
		assert.Equal(t, item.ID, entry.ItemID)
	}
}
