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

// ReferenceHandler serves the Q&A board and the role/module grant table.
type ReferenceHandler struct {
	reference service.ReferenceService
}

func NewReferenceHandler(reference service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{reference: reference}
}

// RegisterPublicRoutes exposes the public slice of the Q&A board.
func (h *ReferenceHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/questions", h.ListPublicQuestions)
}

func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	questions := router.Group("/staff/questions", middleware.RequireRole(
		model.RoleAdmin, model.RoleOperator, model.RoleSalesperson, model.RoleMaintenanceStaff,
	))
	{
		questions.GET("", h.ListQuestions)
		questions.GET("/:id", h.GetQuestion)
		questions.POST("", h.CreateQuestion)
		questions.PUT("/:id", h.UpdateQuestion)
		questions.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeleteQuestion)
	}

	grants := router.Group("/grants", middleware.RequireRole(model.RoleAdmin))
	{
		grants.GET("", h.ListGrants)
		grants.POST("", h.CreateGrant)
		grants.DELETE("/:id", h.DeleteGrant)
	}
}

// ListPublicQuestions returns only non-private Q&A entries
// @Summary      List public questions
// @Tags         qna
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.QuestionResponse}
// @Router       /questions [get]
func (h *ReferenceHandler) ListPublicQuestions(c *gin.Context) {
	p := pagination.Parse(c)

	questions, total, err := h.reference.ListQuestions(c.Request.Context(), false, p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, questions, p.Page, p.Limit, total))
}

// ListQuestions returns all Q&A entries, private ones included
// @Summary      List questions
// @Tags         qna
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.QuestionResponse}
// @Router       /staff/questions [get]
func (h *ReferenceHandler) ListQuestions(c *gin.Context) {
	p := pagination.Parse(c)

	questions, total, err := h.reference.ListQuestions(c.Request.Context(), true, p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, questions, p.Page, p.Limit, total))
}

// GetQuestion returns one Q&A entry
// @Summary      Get question
// @Tags         qna
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  response.Response{data=service.QuestionResponse}
// @Failure      404  {object}  response.Response
// @Router       /staff/questions/{id} [get]
func (h *ReferenceHandler) GetQuestion(c *gin.Context) {
	question, err := h.reference.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, question))
}

// CreateQuestion posts a Q&A entry
// @Summary      Create question
// @Tags         qna
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateQuestionRequest  true  "New entry"
// @Success      201      {object}  response.Response{data=service.QuestionResponse}
// @Router       /staff/questions [post]
func (h *ReferenceHandler) CreateQuestion(c *gin.Context) {
	var req service.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	question, err := h.reference.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, question))
}

// UpdateQuestion edits the answer or visibility of an entry
// @Summary      Update question
// @Tags         qna
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Question ID"
// @Param        payload  body      service.UpdateQuestionRequest  true  "Changes"
// @Success      200      {object}  response.Response{data=service.QuestionResponse}
// @Failure      404      {object}  response.Response
// @Router       /staff/questions/{id} [put]
func (h *ReferenceHandler) UpdateQuestion(c *gin.Context) {
	var req service.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	question, err := h.reference.UpdateQuestion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, question))
}

// DeleteQuestion removes a Q&A entry
// @Summary      Delete question
// @Tags         qna
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /staff/questions/{id} [delete]
func (h *ReferenceHandler) DeleteQuestion(c *gin.Context) {
	if err := h.reference.DeleteQuestion(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// CreateGrant gives a role access to a module
// @Summary      Create grant
// @Tags         grants
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateGrantRequest  true  "Role/module pair"
// @Success      201      {object}  response.Response{data=service.GrantResponse}
// @Failure      400      {object}  response.Response
// @Router       /grants [post]
func (h *ReferenceHandler) CreateGrant(c *gin.Context) {
	var req service.CreateGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	grant, err := h.reference.CreateGrant(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, grant))
}

// DeleteGrant revokes a role/module pair
// @Summary      Delete grant
// @Tags         grants
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Grant ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /grants/{id} [delete]
func (h *ReferenceHandler) DeleteGrant(c *gin.Context) {
	if err := h.reference.DeleteGrant(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// ListGrants returns the whole grant table
// @Summary      List grants
// @Tags         grants
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.GrantResponse}
// @Router       /grants [get]
func (h *ReferenceHandler) ListGrants(c *gin.Context) {
	grants, err := h.reference.ListGrants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, grants))
}
