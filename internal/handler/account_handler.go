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

type AccountHandler struct {
	accounts service.AccountService
}

// NewAccountHandler sets up the routing dependencies for user and employee endpoints
func NewAccountHandler(accounts service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/login", h.Login)
	router.POST("/register", h.Register)

	users := router.Group("/users", middleware.RequireRole(model.RoleAdmin))
	{
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	employees := router.Group("/employees", middleware.RequireRole(model.RoleAdmin, model.RoleOperator))
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployeeByID)
		employees.POST("", middleware.RequireRole(model.RoleAdmin), h.CreateEmployee)
	}
}

// Login authenticates a user and returns a JWT
// @Summary      Log in
// @Description  Verifies the email/password pair and issues a bearer token
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response{data=service.TokenResponse}
// @Failure      401      {object}  response.Response
// @Router       /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	token, err := h.accounts.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, token))
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register creates a self-service PUBLIC_USER account
// @Summary      Register
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        payload  body      registerRequest  true  "New account"
// @Success      201      {object}  response.Response{data=service.UserResponse}
// @Failure      409      {object}  response.Response
// @Router       /register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	// Self-registration never grants staff roles.
	user, err := h.accounts.CreateUser(c.Request.Context(), service.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Role:     model.RolePublicUser,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, user))
}

// CreateUser creates a user with an explicit role
// @Summary      Create a user
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateUserRequest  true  "New user"
// @Success      201      {object}  response.Response{data=service.UserResponse}
// @Failure      409      {object}  response.Response
// @Router       /users [post]
func (h *AccountHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.accounts.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, user))
}

// ListUsers returns a paginated user list
// @Summary      List users
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=[]service.UserResponse}
// @Router       /users [get]
func (h *AccountHandler) ListUsers(c *gin.Context) {
	p := pagination.Parse(c)

	users, total, err := h.accounts.ListUsers(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, users, p.Page, p.Limit, total))
}

// GetUserByID returns one user
// @Summary      Get user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=service.UserResponse}
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
func (h *AccountHandler) GetUserByID(c *gin.Context) {
	user, err := h.accounts.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// UpdateUser mutates email and/or role
// @Summary      Update user
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "User ID"
// @Param        payload  body      service.UpdateUserRequest  true  "Changes"
// @Success      200      {object}  response.Response{data=service.UserResponse}
// @Failure      404      {object}  response.Response
// @Router       /users/{id} [put]
func (h *AccountHandler) UpdateUser(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.accounts.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// DeleteUser soft-deletes a user
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [delete]
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	if err := h.accounts.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// CreateEmployee attaches a staff profile to an existing user
// @Summary      Create employee profile
// @Tags         employees
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateEmployeeRequest  true  "New employee"
// @Success      201      {object}  response.Response{data=service.EmployeeResponse}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /employees [post]
func (h *AccountHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	employee, err := h.accounts.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, employee))
}

// GetEmployeeByID returns one employee with their shifts
// @Summary      Get employee
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  response.Response{data=service.EmployeeResponse}
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [get]
func (h *AccountHandler) GetEmployeeByID(c *gin.Context) {
	employee, err := h.accounts.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}

// ListEmployees returns a paginated employee list
// @Summary      List employees
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.EmployeeResponse}
// @Router       /employees [get]
func (h *AccountHandler) ListEmployees(c *gin.Context) {
	p := pagination.Parse(c)

	employees, total, err := h.accounts.ListEmployees(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, employees, p.Page, p.Limit, total))
}
