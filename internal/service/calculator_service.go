package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/marketprice"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CalculateRequest struct {
	Diameter float64 `json:"diameter" binding:"required,gt=0"` // inches
	Height   float64 `json:"height" binding:"required,gt=0"`   // feet
	TreeType string  `json:"tree_type" binding:"required"`
	Save     bool    `json:"save"`      // persist the run in history
	IsPublic bool    `json:"is_public"` // saved run visibility
}

type CalculateResponse struct {
	BoardFootVolume   float64 `json:"board_foot_volume"`
	PricePerBoardFoot string  `json:"price_per_board_foot"`
	EstimatedCost     string  `json:"estimated_cost"`
	TreeType          string  `json:"tree_type"`
}

type WoodTypeResponse struct {
	Name              string `json:"name"`
	PricePerBoardFoot string `json:"price_per_board_foot"`
}

type CalculationHistoryEntry struct {
	ID                uuid.UUID `json:"id"`
	Diameter          float64   `json:"diameter"`
	Height            float64   `json:"height"`
	TreeType          string    `json:"tree_type"`
	PricePerBoardFoot string    `json:"price_per_board_foot"`
	IsPublic          bool      `json:"is_public"`
	CreatedAt         time.Time `json:"created_at"`
}

type ProfitEstimateResponse struct {
	EstimatedProfit string            `json:"estimated_profit"`
	AdditionalStats map[string]string `json:"additional_stats"`
}

type MarketPriceResponse struct {
	MarketPrice float64   `json:"market_price"`
	LastUpdate  time.Time `json:"last_update"`
}

// CalculatorService estimates board-foot volume, cost and profit from tree
// measurements and the stored per-tree-type pricing rows.
type CalculatorService interface {
	Calculate(ctx context.Context, req CalculateRequest) (*CalculateResponse, error)
	WoodTypes(ctx context.Context) ([]WoodTypeResponse, error)
	History(ctx context.Context, publicOnly bool, page, limit int) ([]CalculationHistoryEntry, int64, error)
	EstimateProfit(ctx context.Context, req CalculateRequest) (*ProfitEstimateResponse, error)
	MarketPrice(ctx context.Context) (*MarketPriceResponse, error)
}

type calculatorService struct {
	repo   repository.ReferenceRepository
	market *marketprice.Client
}

func NewCalculatorService(repo repository.ReferenceRepository, market *marketprice.Client) CalculatorService {
	return &calculatorService{repo: repo, market: market}
}

// BoardFootVolume computes the lumber yield of a tree in board feet from
// its diameter in inches and height in feet.
func BoardFootVolume(diameter, height float64) float64 {
	return diameter * diameter * height / 12.0
}

func (s *calculatorService) Calculate(ctx context.Context, req CalculateRequest) (*CalculateResponse, error) {
	if !model.ValidTreeType(req.TreeType) {
		return nil, fmt.Errorf("%w: tree type %q", repository.ErrInvalidEnum, req.TreeType)
	}

	pricing, err := s.repo.FindPricingByTreeType(ctx, req.TreeType)
	if err != nil {
		return nil, err
	}

	volume := BoardFootVolume(req.Diameter, req.Height)
	cost := pricing.PricePerBoardFoot.Mul(decimal.NewFromFloat(volume)).Round(2)

	if req.Save {
		run := &model.BoardFootCalculator{
			Diameter:          req.Diameter,
			Height:            req.Height,
			TreeType:          req.TreeType,
			PricePerBoardFoot: pricing.PricePerBoardFoot,
			IsPublic:          req.IsPublic,
		}
		if err := s.repo.CreateCalculation(ctx, run); err != nil {
			return nil, err
		}
	}

	return &CalculateResponse{
		BoardFootVolume:   volume,
		PricePerBoardFoot: pricing.PricePerBoardFoot.StringFixed(2),
		EstimatedCost:     cost.StringFixed(2),
		TreeType:          req.TreeType,
	}, nil
}

func (s *calculatorService) WoodTypes(ctx context.Context) ([]WoodTypeResponse, error) {
	types := make([]WoodTypeResponse, 0, len(model.TreeTypes))
	for _, treeType := range model.TreeTypes {
		pricing, err := s.repo.FindPricingByTreeType(ctx, treeType)
		if err != nil {
			continue // tree types without a pricing row are simply omitted
		}
		types = append(types, WoodTypeResponse{
			Name:              treeType,
			PricePerBoardFoot: pricing.PricePerBoardFoot.StringFixed(2),
		})
	}
	return types, nil
}

func (s *calculatorService) History(ctx context.Context, publicOnly bool, page, limit int) ([]CalculationHistoryEntry, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	calcs, total, err := s.repo.ListCalculations(ctx, publicOnly, page, limit)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]CalculationHistoryEntry, 0, len(calcs))
	for _, c := range calcs {
		entries = append(entries, CalculationHistoryEntry{
			ID:                c.ID,
			Diameter:          c.Diameter,
			Height:            c.Height,
			TreeType:          c.TreeType,
			PricePerBoardFoot: c.PricePerBoardFoot.StringFixed(2),
			IsPublic:          c.IsPublic,
			CreatedAt:         c.CreatedAt,
		})
	}
	return entries, total, nil
}

// EstimateProfit compares revenue at the current market price against cost
// at the stored per-tree-type price. When the market feed is unavailable
// the stored price stands in, which yields zero margin.
func (s *calculatorService) EstimateProfit(ctx context.Context, req CalculateRequest) (*ProfitEstimateResponse, error) {
	if !model.ValidTreeType(req.TreeType) {
		return nil, fmt.Errorf("%w: tree type %q", repository.ErrInvalidEnum, req.TreeType)
	}

	pricing, err := s.repo.FindPricingByTreeType(ctx, req.TreeType)
	if err != nil {
		return nil, err
	}

	volume := decimal.NewFromFloat(BoardFootVolume(req.Diameter, req.Height))
	cost := pricing.PricePerBoardFoot.Mul(volume)

	salePrice := pricing.PricePerBoardFoot
	if s.market != nil {
		if quote, err := s.market.Current(ctx); err == nil {
			salePrice = decimal.NewFromFloat(quote.MarketPrice)
		}
	}

	revenue := salePrice.Mul(volume)
	profit := revenue.Sub(cost)

	return &ProfitEstimateResponse{
		EstimatedProfit: profit.Round(2).StringFixed(2),
		AdditionalStats: map[string]string{
			"board_foot_volume": volume.Round(2).StringFixed(2),
			"estimated_revenue": revenue.Round(2).StringFixed(2),
			"estimated_cost":    cost.Round(2).StringFixed(2),
			"sale_price":        salePrice.Round(2).StringFixed(2),
		},
	}, nil
}

func (s *calculatorService) MarketPrice(ctx context.Context) (*MarketPriceResponse, error) {
	if s.market == nil {
		return nil, fmt.Errorf("market price feed not configured")
	}

	quote, err := s.market.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &MarketPriceResponse{
		MarketPrice: quote.MarketPrice,
		LastUpdate:  quote.LastUpdate,
	}, nil
}
