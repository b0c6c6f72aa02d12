package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/marketprice"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardFootVolume(t *testing.T) {
	tests := []struct {
		name     string
		diameter float64
		height   float64
		want     float64
	}{
		{"typical log", 12, 20, 240},
		{"small log", 6, 10, 30},
		{"unit log", 1, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BoardFootVolume(tt.diameter, tt.height), 1e-9)
		})
	}
}

func TestCalculate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReferenceRepo()
	repo.pricing[model.TreeTypeOak] = decimal.RequireFromString("4.25")
	svc := NewCalculatorService(repo, nil)

	t.Run("volume times stored price", func(t *testing.T) {
		result, err := svc.Calculate(ctx, CalculateRequest{
			Diameter: 12,
			Height:   20,
			TreeType: model.TreeTypeOak,
		})
		require.NoError(t, err)
		assert.InDelta(t, 240, result.BoardFootVolume, 1e-9)
		assert.Equal(t, "4.25", result.PricePerBoardFoot)
		assert.Equal(t, "1020.00", result.EstimatedCost)
	})

	t.Run("save persists the run", func(t *testing.T) {
		before := len(repo.saved)
		_, err := svc.Calculate(ctx, CalculateRequest{
			Diameter: 6,
			Height:   10,
			TreeType: model.TreeTypeOak,
			Save:     true,
			IsPublic: true,
		})
		require.NoError(t, err)
		require.Len(t, repo.saved, before+1)
		assert.True(t, repo.saved[len(repo.saved)-1].IsPublic)
	})

	t.Run("unknown tree type is rejected", func(t *testing.T) {
		_, err := svc.Calculate(ctx, CalculateRequest{Diameter: 12, Height: 20, TreeType: "BIRCH"})
		assert.ErrorIs(t, err, repository.ErrInvalidEnum)
	})

	t.Run("tree type without pricing surfaces not found", func(t *testing.T) {
		_, err := svc.Calculate(ctx, CalculateRequest{Diameter: 12, Height: 20, TreeType: model.TreeTypePine})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestWoodTypes(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReferenceRepo()
	repo.pricing[model.TreeTypeOak] = decimal.RequireFromString("4.25")
	repo.pricing[model.TreeTypeCedar] = decimal.RequireFromString("3.10")
	svc := NewCalculatorService(repo, nil)

	types, err := svc.WoodTypes(ctx)
	require.NoError(t, err)

	// Tree types without a pricing row are omitted, not errored.
	require.Len(t, types, 2)
	names := []string{types[0].Name, types[1].Name}
	assert.Contains(t, names, model.TreeTypeOak)
	assert.Contains(t, names, model.TreeTypeCedar)
}

func TestEstimateProfit(t *testing.T) {
	ctx := context.Background()

	t.Run("market price drives revenue", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(marketprice.Quote{ //nolint:errcheck
				MarketPrice: 5.00,
				LastUpdate:  time.Now(),
			})
		}))
		defer server.Close()

		repo := newFakeReferenceRepo()
		repo.pricing[model.TreeTypeOak] = decimal.RequireFromString("4.25")
		svc := NewCalculatorService(repo, marketprice.New(server.URL, time.Second))

		estimate, err := svc.EstimateProfit(ctx, CalculateRequest{
			Diameter: 12,
			Height:   20,
			TreeType: model.TreeTypeOak,
		})
		require.NoError(t, err)

		// 240 bf at 5.00 sale vs 4.25 cost.
		assert.Equal(t, "180.00", estimate.EstimatedProfit)
		assert.Equal(t, "1200.00", estimate.AdditionalStats["estimated_revenue"])
		assert.Equal(t, "1020.00", estimate.AdditionalStats["estimated_cost"])
	})

	t.Run("no feed means the stored price stands in", func(t *testing.T) {
		repo := newFakeReferenceRepo()
		repo.pricing[model.TreeTypeOak] = decimal.RequireFromString("4.25")
		svc := NewCalculatorService(repo, nil)

		estimate, err := svc.EstimateProfit(ctx, CalculateRequest{
			Diameter: 12,
			Height:   20,
			TreeType: model.TreeTypeOak,
		})
		require.NoError(t, err)
		assert.Equal(t, "0.00", estimate.EstimatedProfit)
	})
}

func TestMarketPrice(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReferenceRepo()

	t.Run("unconfigured feed errors", func(t *testing.T) {
		svc := NewCalculatorService(repo, nil)
		_, err := svc.MarketPrice(ctx)
		assert.Error(t, err)
	})

	t.Run("quote is passed through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(marketprice.Quote{MarketPrice: 3.33}) //nolint:errcheck
		}))
		defer server.Close()

		svc := NewCalculatorService(repo, marketprice.New(server.URL, time.Second))
		quote, err := svc.MarketPrice(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 3.33, quote.MarketPrice, 1e-9)
	})
}
