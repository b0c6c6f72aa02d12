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

type ScheduleHandler struct {
	schedules service.ScheduleService
}

func NewScheduleHandler(schedules service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	shifts := router.Group("/shifts", middleware.RequireModule(model.ModuleScheduling))
	{
		shifts.GET("", h.ListShifts)
		shifts.GET("/:id", h.GetShift)
		shifts.POST("", h.CreateShift)
		shifts.PUT("/:id", h.UpdateShift)
		shifts.DELETE("/:id", h.DeleteShift)
	}

	router.GET("/employees/:id/shifts", middleware.RequireModule(model.ModuleScheduling), h.ListShiftsByEmployee)
}

// CreateShift schedules a work shift for an employee
// @Summary      Create shift
// @Tags         scheduling
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateShiftRequest  true  "New shift"
// @Success      201      {object}  response.Response{data=service.ShiftResponse}
// @Failure      422      {object}  response.Response
// @Router       /shifts [post]
func (h *ScheduleHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	shift, err := h.schedules.CreateShift(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, shift))
}

// GetShift returns one shift
// @Summary      Get shift
// @Tags         scheduling
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Shift ID"
// @Success      200  {object}  response.Response{data=service.ShiftResponse}
// @Failure      404  {object}  response.Response
// @Router       /shifts/{id} [get]
func (h *ScheduleHandler) GetShift(c *gin.Context) {
	shift, err := h.schedules.GetShift(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, shift))
}

// UpdateShift reschedules a shift
// @Summary      Update shift
// @Tags         scheduling
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Shift ID"
// @Param        payload  body      service.UpdateShiftRequest  true  "Changes"
// @Success      200      {object}  response.Response{data=service.ShiftResponse}
// @Failure      404      {object}  response.Response
// @Router       /shifts/{id} [put]
func (h *ScheduleHandler) UpdateShift(c *gin.Context) {
	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	shift, err := h.schedules.UpdateShift(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, shift))
}

// DeleteShift removes a shift
// @Summary      Delete shift
// @Tags         scheduling
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Shift ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /shifts/{id} [delete]
func (h *ScheduleHandler) DeleteShift(c *gin.Context) {
	if err := h.schedules.DeleteShift(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// ListShifts returns a paginated shift list
// @Summary      List shifts
// @Tags         scheduling
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.ShiftResponse}
// @Router       /shifts [get]
func (h *ScheduleHandler) ListShifts(c *gin.Context) {
	p := pagination.Parse(c)

	shifts, total, err := h.schedules.ListShifts(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, shifts, p.Page, p.Limit, total))
}

// ListShiftsByEmployee returns all shifts for one employee
// @Summary      List shifts by employee
// @Tags         scheduling
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  response.Response{data=[]service.ShiftResponse}
// @Router       /employees/{id}/shifts [get]
func (h *ScheduleHandler) ListShiftsByEmployee(c *gin.Context) {
	shifts, err := h.schedules.ListShiftsByEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, shifts))
}
