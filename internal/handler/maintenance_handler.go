package handler

import (
	"net/http"
	"time"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	maintenance service.MaintenanceService
}

func NewMaintenanceHandler(maintenance service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

func (h *MaintenanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	equipment := router.Group("/equipment", middleware.RequireModule(model.ModuleMaintenanceTracker))
	{
		equipment.GET("", h.ListEquipment)
		equipment.GET("/:id", h.GetEquipment)
		equipment.POST("", h.CreateEquipment)
		equipment.DELETE("/:id", h.DeleteEquipment)
	}

	records := router.Group("/maintenance", middleware.RequireModule(model.ModuleMaintenanceTracker))
	{
		records.GET("", h.ListRecords)
		records.GET("/:id", h.GetRecord)
		records.POST("", h.CreateRecord)
		records.PUT("/:id", h.UpdateRecord)
		records.DELETE("/:id", h.DeleteRecord)

		records.POST("/:id/complete", h.CompleteRecord)
		records.POST("/:id/parts", h.UseSpareParts)
	}
}

type completeRecordRequest struct {
	CompletionDate *time.Time `json:"completionDate"`
}

type sparePartsRequest struct {
	Parts []service.PartUsage `json:"parts" binding:"required,min=1"`
}

// CreateEquipment registers a machine
// @Summary      Create equipment
// @Tags         maintenance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateEquipmentRequest  true  "New equipment"
// @Success      201      {object}  response.Response{data=service.EquipmentResponse}
// @Router       /equipment [post]
func (h *MaintenanceHandler) CreateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	eq, err := h.maintenance.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, eq))
}

// GetEquipment returns one machine with its maintenance history
// @Summary      Get equipment
// @Tags         maintenance
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Equipment ID"
// @Success      200  {object}  response.Response{data=service.EquipmentResponse}
// @Failure      404  {object}  response.Response
// @Router       /equipment/{id} [get]
func (h *MaintenanceHandler) GetEquipment(c *gin.Context) {
	eq, err := h.maintenance.GetEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, eq))
}

// ListEquipment returns a paginated equipment list
// @Summary      List equipment
// @Tags         maintenance
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.EquipmentResponse}
// @Router       /equipment [get]
func (h *MaintenanceHandler) ListEquipment(c *gin.Context) {
	p := pagination.Parse(c)

	eqs, total, err := h.maintenance.ListEquipment(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, eqs, p.Page, p.Limit, total))
}

// DeleteEquipment soft-deletes a machine; fails if maintenance logs reference it
// @Summary      Delete equipment
// @Tags         maintenance
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Equipment ID"
// @Success      200  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /equipment/{id} [delete]
func (h *MaintenanceHandler) DeleteEquipment(c *gin.Context) {
	if err := h.maintenance.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// CreateRecord opens a maintenance record for a machine
// @Summary      Create maintenance record
// @Tags         maintenance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateMaintenanceRequest  true  "New record"
// @Success      201      {object}  response.Response{data=service.MaintenanceResponse}
// @Failure      422      {object}  response.Response
// @Router       /maintenance [post]
func (h *MaintenanceHandler) CreateRecord(c *gin.Context) {
	var req service.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rec, err := h.maintenance.CreateRecord(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rec))
}

// GetRecord returns one maintenance record
// @Summary      Get maintenance record
// @Tags         maintenance
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  response.Response{data=service.MaintenanceResponse}
// @Failure      404  {object}  response.Response
// @Router       /maintenance/{id} [get]
func (h *MaintenanceHandler) GetRecord(c *gin.Context) {
	rec, err := h.maintenance.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}

// UpdateRecord edits the description or reassigns the record
// @Summary      Update maintenance record
// @Tags         maintenance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Record ID"
// @Param        payload  body      service.UpdateMaintenanceRequest  true  "Changes"
// @Success      200      {object}  response.Response{data=service.MaintenanceResponse}
// @Failure      404      {object}  response.Response
// @Router       /maintenance/{id} [put]
func (h *MaintenanceHandler) UpdateRecord(c *gin.Context) {
	var req service.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rec, err := h.maintenance.UpdateRecord(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}

// DeleteRecord removes a maintenance record
// @Summary      Delete maintenance record
// @Tags         maintenance
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /maintenance/{id} [delete]
func (h *MaintenanceHandler) DeleteRecord(c *gin.Context) {
	if err := h.maintenance.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// ListRecords returns maintenance records; ?pending=true filters to open work
// @Summary      List maintenance records
// @Tags         maintenance
// @Security     BearerAuth
// @Produce      json
// @Param        pending  query     bool  false  "Only records without a completion date"
// @Success      200      {object}  response.Response{data=[]service.MaintenanceResponse}
// @Router       /maintenance [get]
func (h *MaintenanceHandler) ListRecords(c *gin.Context) {
	p := pagination.Parse(c)
	pendingOnly := c.Query("pending") == "true"

	recs, total, err := h.maintenance.ListRecords(c.Request.Context(), pendingOnly, p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, recs, p.Page, p.Limit, total))
}

// CompleteRecord stamps a completion date on an open record. Completing an
// already-completed record is a no-op.
// @Summary      Complete maintenance record
// @Tags         maintenance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true   "Record ID"
// @Param        payload  body      completeRecordRequest  false  "Optional completion date, defaults to now"
// @Success      200      {object}  response.Response{data=service.MaintenanceResponse}
// @Failure      404      {object}  response.Response
// @Router       /maintenance/{id}/complete [post]
func (h *MaintenanceHandler) CompleteRecord(c *gin.Context) {
	var req completeRecordRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
			return
		}
	}

	at := time.Now().UTC()
	if req.CompletionDate != nil {
		at = *req.CompletionDate
	}

	rec, err := h.maintenance.CompleteRecord(c.Request.Context(), c.Param("id"), at)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}

// UseSpareParts consumes inventory against a maintenance record. Each part
// is applied independently; insufficient stock marks that part as not applied
// instead of failing the whole request.
// @Summary      Consume spare parts
// @Tags         maintenance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Record ID"
// @Param        payload  body      sparePartsRequest  true  "Parts to consume"
// @Success      200      {object}  response.Response{data=[]service.PartUsageResult}
// @Failure      404      {object}  response.Response
// @Router       /maintenance/{id}/parts [post]
func (h *MaintenanceHandler) UseSpareParts(c *gin.Context) {
	var req sparePartsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	results, err := h.maintenance.UseSpareParts(c.Request.Context(), c.Param("id"), req.Parts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}
