package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaintenanceServiceForTest() (*fakeMaintenanceRepo, *fakeInventoryRepo, MaintenanceService) {
	maintRepo := newFakeMaintenanceRepo()
	invRepo := newFakeInventoryRepo()
	svc := NewMaintenanceService(maintRepo, invRepo, fakeTxManager{}, nil)
	return maintRepo, invRepo, svc
}

func seedRecord(t *testing.T, svc MaintenanceService) *MaintenanceResponse {
	t.Helper()

	eq, err := svc.CreateEquipment(context.Background(), CreateEquipmentRequest{Name: "Head saw"})
	require.NoError(t, err)

	rec, err := svc.CreateRecord(context.Background(), CreateMaintenanceRequest{
		EquipmentID: eq.ID.String(),
		EmployeeID:  uuid.NewString(),
		Description: "Blade replacement",
	})
	require.NoError(t, err)
	return rec
}

func TestCompleteRecord(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newMaintenanceServiceForTest()
	rec := seedRecord(t, svc)
	assert.True(t, rec.Pending)

	at := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	done, err := svc.CompleteRecord(ctx, rec.ID.String(), at)
	require.NoError(t, err)
	require.NotNil(t, done.CompletionDate)
	assert.False(t, done.Pending)
	assert.True(t, done.CompletionDate.Equal(at))

	t.Run("completing again keeps the first date", func(t *testing.T) {
		later := at.Add(48 * time.Hour)
		again, err := svc.CompleteRecord(ctx, rec.ID.String(), later)
		require.NoError(t, err)
		assert.True(t, again.CompletionDate.Equal(at))
	})

	t.Run("unknown record surfaces not found", func(t *testing.T) {
		_, err := svc.CompleteRecord(ctx, uuid.NewString(), at)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestUseSpareParts(t *testing.T) {
	ctx := context.Background()
	_, invRepo, svc := newMaintenanceServiceForTest()
	rec := seedRecord(t, svc)

	blades := &model.InventoryItem{Name: "Saw blades", Quantity: 10, ItemType: model.ItemTypeResource}
	require.NoError(t, invRepo.CreateItem(ctx, blades))
	belts := &model.InventoryItem{Name: "Drive belts", Quantity: 1, ItemType: model.ItemTypeResource}
	require.NoError(t, invRepo.CreateItem(ctx, belts))

	t.Run("sufficient stock is consumed through the ledger", func(t *testing.T) {
		results, err := svc.UseSpareParts(ctx, rec.ID.String(), []PartUsage{
			{ItemID: blades.ID.String(), QuantityUsed: 4},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Applied)
		assert.Equal(t, 6, results[0].RemainingQuantity)

		item, err := invRepo.GetItem(ctx, blades.ID)
		require.NoError(t, err)
		assert.Equal(t, 6, item.Quantity)
		require.Len(t, invRepo.logs, 1)
		assert.Equal(t, -4, invRepo.logs[0].ChangeAmount)
	})

	t.Run("insufficient stock is reported, not applied", func(t *testing.T) {
		results, err := svc.UseSpareParts(ctx, rec.ID.String(), []PartUsage{
			{ItemID: belts.ID.String(), QuantityUsed: 3},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Applied)
		assert.Equal(t, 1, results[0].RemainingQuantity)

		item, err := invRepo.GetItem(ctx, belts.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity) // untouched
	})

	t.Run("mixed batch applies what it can", func(t *testing.T) {
		results, err := svc.UseSpareParts(ctx, rec.ID.String(), []PartUsage{
			{ItemID: blades.ID.String(), QuantityUsed: 2},
			{ItemID: belts.ID.String(), QuantityUsed: 5},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results[0].Applied)
		assert.False(t, results[1].Applied)
	})

	t.Run("unknown record surfaces not found", func(t *testing.T) {
		_, err := svc.UseSpareParts(ctx, uuid.NewString(), []PartUsage{
			{ItemID: blades.ID.String(), QuantityUsed: 1},
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestListRecordsPendingFilter(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newMaintenanceServiceForTest()

	open := seedRecord(t, svc)
	closed := seedRecord(t, svc)
	_, err := svc.CompleteRecord(ctx, closed.ID.String(), time.Now())
	require.NoError(t, err)

	recs, total, err := svc.ListRecords(ctx, true, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, recs, 1)
	assert.Equal(t, open.ID, recs[0].ID)
}
