package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sdbuildbox/building_management_app/internal/apperrors"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/middleware"
)

// userHandler handles HTTP requests for the tenant directory.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers directory routes. Route shapes follow the
// wire contract the web client already speaks.
func registerUserRoutes(r *gin.Engine, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	r.POST("/users", h.createUser)
	r.POST("/usersLogin", h.loginUser)
	r.GET("/users", h.listUsers)
	r.GET("/user/:email", h.getUserByEmail)
	r.PUT("/users", h.ensureUser)
	r.PUT("/updateUsers/:id", h.updateUserRole)
	r.PUT("/usersToMember", h.promoteToMember)
	r.DELETE("/users/:id", h.deleteUser)
}

// createUser godoc
// @Summary Register a new user
// @Description Creates a directory record. A duplicate email is rejected.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate user", slog.String("user_email", req.Email))
			c.JSON(http.StatusConflict, ErrorResponse{Error: "user already exists"})
			return
		}
		respondServiceError(c, logger, err, "Failed to create user")
		return
	}

	logger.Info("User created", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := bindListParams(c)

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// getUserByEmail godoc
// @Summary Get a user by email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/{email} [get]
func (h *userHandler) getUserByEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email := c.Param("email")

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ensureUser godoc
// @Summary Ensure a default user exists
// @Description Idempotent create-if-absent. An existing record is reported and left untouched.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.EnsureUserRequest true "User identity"
// @Success 200 {object} dto.StatusResponse "Already exists"
// @Success 201 {object} dto.CreatedResponse "Created"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [put]
func (h *userHandler) ensureUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EnsureUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ensureUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, created, err := h.userService.EnsureUser(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to ensure user")
		return
	}

	if !created {
		c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "user already exists, no changes made"})
		return
	}

	logger.Info("Default user created", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.CreatedResponse{Success: true, InsertedID: user.UserID})
}

// loginUser godoc
// @Summary Record a sign-in, creating the user on first login
// @Description Create-if-absent upsert the web client calls after a social sign-in. A known email is acknowledged without changes.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.EnsureUserRequest true "User identity"
// @Success 200 {object} dto.StatusResponse "Already exists"
// @Success 201 {object} dto.CreatedResponse "Created"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usersLogin [post]
func (h *userHandler) loginUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EnsureUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for loginUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, created, err := h.userService.EnsureUser(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log in user")
		return
	}

	if !created {
		c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "user already exists"})
		return
	}

	logger.Info("User added on first login", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.CreatedResponse{Success: true, InsertedID: user.UserID})
}

// updateUserRole godoc
// @Summary Update a user's role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body dto.UpdateUserRoleRequest true "New role"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /updateUsers/{id} [put]
func (h *userHandler) updateUserRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateUserRole", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.UpdateUserRole(c.Request.Context(), userID, domain.Role(req.Role)); err != nil {
		respondServiceError(c, logger, err, "Failed to update user role")
		return
	}

	logger.Info("User role updated", slog.String("user_id", userID), slog.String("role", req.Role))
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "user role updated"})
}

// promoteToMember godoc
// @Summary Promote a user by email
// @Description Sets the role and agreement-accepted date of an existing user. The date defaults to now when omitted.
// @Tags users
// @Accept json
// @Produce json
// @Param promotion body dto.PromoteUserRequest true "Promotion details"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usersToMember [put]
func (h *userHandler) promoteToMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PromoteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for promoteToMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.PromoteToMember(c.Request.Context(), req); err != nil {
		respondServiceError(c, logger, err, "Failed to promote user")
		return
	}

	logger.Info("User promoted", slog.String("user_email", req.Email), slog.String("role", req.Role))
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "user updated"})
}

// deleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete user")
		return
	}

	logger.Info("User deleted", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "user deleted"})
}
