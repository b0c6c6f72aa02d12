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

type InventoryHandler struct {
	inventory service.InventoryService
}

func NewInventoryHandler(inventory service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/inventory", middleware.RequireModule(model.ModuleInventoryManagement))
	{
		items.GET("", h.ListItems)
		items.GET("/:id", h.GetItem)
		items.POST("", h.CreateItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)

		items.POST("/:id/adjust", h.AdjustStock)
		items.GET("/:id/logs", h.ListItemLogs)
		items.GET("/:id/audit", h.AuditQuantity)
	}
}

// CreateItem registers a new inventory item, optionally with an opening balance
// @Summary      Create inventory item
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateItemRequest  true  "New item"
// @Success      201      {object}  response.Response{data=service.ItemResponse}
// @Failure      400      {object}  response.Response
// @Router       /inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.inventory.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// GetItem returns one inventory item
// @Summary      Get inventory item
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  response.Response{data=service.ItemResponse}
// @Failure      404  {object}  response.Response
// @Router       /inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.inventory.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// UpdateItem renames or retypes an item. Quantity is not writable here;
// stock moves only through the adjust endpoint.
// @Summary      Update inventory item
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Item ID"
// @Param        payload  body      service.UpdateItemRequest  true  "Changes"
// @Success      200      {object}  response.Response{data=service.ItemResponse}
// @Failure      404      {object}  response.Response
// @Router       /inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var req service.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.inventory.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteItem soft-deletes an item; its ledger rows stay behind for audit
// @Summary      Delete inventory item
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.inventory.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// ListItems returns a paginated item list
// @Summary      List inventory items
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.ItemResponse}
// @Router       /inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	p := pagination.Parse(c)

	items, total, err := h.inventory.ListItems(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, items, p.Page, p.Limit, total))
}

// AdjustStock records a signed stock movement in the ledger and applies it
// to the item's quantity in one transaction
// @Summary      Adjust stock
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Item ID"
// @Param        payload  body      service.AdjustStockRequest  true  "Signed change"
// @Success      200      {object}  response.Response{data=service.ItemResponse}
// @Failure      404      {object}  response.Response
// @Router       /inventory/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.inventory.AdjustStock(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// ListItemLogs returns the append-only movement history of an item
// @Summary      List stock movements
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  response.Response{data=[]service.StockLogResponse}
// @Router       /inventory/{id}/logs [get]
func (h *InventoryHandler) ListItemLogs(c *gin.Context) {
	p := pagination.Parse(c)

	logs, total, err := h.inventory.ListItemLogs(c.Request.Context(), c.Param("id"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, logs, p.Page, p.Limit, total))
}

// AuditQuantity compares the stored quantity to the sum of ledger entries
// @Summary      Audit item quantity
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /inventory/{id}/audit [get]
func (h *InventoryHandler) AuditQuantity(c *gin.Context) {
	stored, derived, err := h.inventory.AuditQuantity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"stored_quantity":  stored,
		"derived_quantity": derived,
		"consistent":       int64(stored) == derived,
	}))
}
