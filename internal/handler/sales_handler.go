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

type SalesHandler struct {
	sales service.SalesService
}

func NewSalesHandler(sales service.SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

func (h *SalesHandler) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers", middleware.RequireModule(model.ModuleSales))
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("", h.CreateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}

	orders := router.Group("/orders", middleware.RequireModule(model.ModuleSales))
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("", h.CreateOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
	}
}

// CreateCustomer registers a customer
// @Summary      Create customer
// @Tags         sales
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCustomerRequest  true  "New customer"
// @Success      201      {object}  response.Response{data=service.CustomerResponse}
// @Router       /customers [post]
func (h *SalesHandler) CreateCustomer(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	customer, err := h.sales.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, customer))
}

// GetCustomer returns one customer with their order history
// @Summary      Get customer
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.Response{data=service.CustomerResponse}
// @Failure      404  {object}  response.Response
// @Router       /customers/{id} [get]
func (h *SalesHandler) GetCustomer(c *gin.Context) {
	customer, err := h.sales.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, customer))
}

// ListCustomers returns a paginated customer list
// @Summary      List customers
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.CustomerResponse}
// @Router       /customers [get]
func (h *SalesHandler) ListCustomers(c *gin.Context) {
	p := pagination.Parse(c)

	customers, total, err := h.sales.ListCustomers(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, customers, p.Page, p.Limit, total))
}

// DeleteCustomer soft-deletes a customer; fails while orders reference them
// @Summary      Delete customer
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /customers/{id} [delete]
func (h *SalesHandler) DeleteCustomer(c *gin.Context) {
	if err := h.sales.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// CreateOrder opens a sales order attributed to the authenticated salesperson
// @Summary      Create order
// @Tags         sales
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateOrderRequest  true  "New order"
// @Success      201      {object}  response.Response{data=service.OrderResponse}
// @Failure      422      {object}  response.Response
// @Router       /orders [post]
func (h *SalesHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID := c.GetString("userID")
	order, err := h.sales.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, order))
}

// GetOrder returns one order
// @Summary      Get order
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.Response{data=service.OrderResponse}
// @Failure      404  {object}  response.Response
// @Router       /orders/{id} [get]
func (h *SalesHandler) GetOrder(c *gin.Context) {
	order, err := h.sales.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// UpdateOrder changes the price or status of an order
// @Summary      Update order
// @Tags         sales
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Order ID"
// @Param        payload  body      service.UpdateOrderRequest  true  "Changes"
// @Success      200      {object}  response.Response{data=service.OrderResponse}
// @Failure      400      {object}  response.Response
// @Router       /orders/{id} [put]
func (h *SalesHandler) UpdateOrder(c *gin.Context) {
	var req service.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	order, err := h.sales.UpdateOrder(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// DeleteOrder removes an order
// @Summary      Delete order
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /orders/{id} [delete]
func (h *SalesHandler) DeleteOrder(c *gin.Context) {
	if err := h.sales.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// ListOrders returns a paginated order list with customers preloaded
// @Summary      List orders
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.OrderResponse}
// @Router       /orders [get]
func (h *SalesHandler) ListOrders(c *gin.Context) {
	p := pagination.Parse(c)

	orders, total, err := h.sales.ListOrders(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, orders, p.Page, p.Limit, total))
}
