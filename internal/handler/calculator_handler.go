package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CalculatorHandler struct {
	calculator service.CalculatorService
}

func NewCalculatorHandler(calculator service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculator: calculator}
}

// RegisterPublicRoutes binds the endpoints anyone may call without a token.
func (h *CalculatorHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	calc := router.Group("/calculator")
	{
		calc.POST("/board-foot", h.Calculate)
		calc.GET("/wood-types", h.WoodTypes)
	}
}

// RegisterRoutes binds the staff-only calculator endpoints.
func (h *CalculatorHandler) RegisterRoutes(router *gin.RouterGroup) {
	calc := router.Group("/calculator", middleware.RequireModule(model.ModulePrivateCalculator))
	{
		calc.GET("/history", h.History)
		calc.GET("/market-price", h.MarketPrice)
		calc.POST("/profit", h.EstimateProfit)
	}
}

// Calculate estimates board-foot volume and cost for a tree.
// Volume is diameter squared times height over twelve; cost is volume times
// the stored per-board-foot price for the tree type.
// @Summary      Board-foot calculation
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CalculateRequest  true  "Tree measurements"
// @Success      200      {object}  response.Response{data=service.CalculateResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /calculator/board-foot [post]
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var req service.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.calculator.Calculate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// WoodTypes lists the tree types that have a public pricing row
// @Summary      List wood types
// @Tags         calculator
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.WoodTypeResponse}
// @Router       /calculator/wood-types [get]
func (h *CalculatorHandler) WoodTypes(c *gin.Context) {
	types, err := h.calculator.WoodTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, types))
}

// History returns saved calculator runs; ?public=true restricts to public rows
// @Summary      Calculation history
// @Tags         calculator
// @Security     BearerAuth
// @Produce      json
// @Param        public  query     bool  false  "Only public rows"
// @Success      200     {object}  response.Response{data=[]service.CalculationHistoryEntry}
// @Router       /calculator/history [get]
func (h *CalculatorHandler) History(c *gin.Context) {
	p := pagination.Parse(c)
	publicOnly := c.Query("public") == "true"

	entries, total, err := h.calculator.History(c.Request.Context(), publicOnly, p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, entries, p.Page, p.Limit, total))
}

// EstimateProfit estimates sale revenue minus cost for a tree, using the
// live market price when the upstream feed is configured
// @Summary      Profit estimate
// @Tags         calculator
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CalculateRequest  true  "Tree measurements"
// @Success      200      {object}  response.Response{data=service.ProfitEstimateResponse}
// @Failure      404      {object}  response.Response
// @Router       /calculator/profit [post]
func (h *CalculatorHandler) EstimateProfit(c *gin.Context) {
	var req service.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	estimate, err := h.calculator.EstimateProfit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, estimate))
}

// MarketPrice proxies the upstream lumber market price feed
// @Summary      Market price
// @Tags         calculator
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.MarketPriceResponse}
// @Failure      502  {object}  response.Response
// @Router       /calculator/market-price [get]
func (h *CalculatorHandler) MarketPrice(c *gin.Context) {
	quote, err := h.calculator.MarketPrice(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}
