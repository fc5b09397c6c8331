package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/foodhub-app/user-service/internal/application"
	"github.com/foodhub-app/user-service/pkg/response"
	"github.com/foodhub-app/user-service/pkg/validation"
)

// UserHandler exposes the user query/mutation surface. All routes require an
// authenticated caller (see the user module wiring).
type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// fail maps use-case errors onto HTTP statuses. Unexpected errors surface as
// a generic 500 without internal detail.
func (h *UserHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, "invalid input", nil)
	case errors.Is(err, application.ErrConflict):
		response.Error(c, http.StatusConflict, "email already registered", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "user not found", nil)
	default:
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("user operation failed")
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}

// Create POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var dto application.CreateUserDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	id, err := h.Svc.Create(c.Request.Context(), dto)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "user created")
}

// Update PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	dto := application.UpdateUserDto{ID: id, Name: req.Name, Phone: req.Phone}
	if err := h.Svc.Update(c.Request.Context(), dto); err != nil {
		h.fail(c, err)
		return
	}

	updated, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated, "user updated")
}

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	user, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if user == nil {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, user, "user retrieved")
}

// List GET /api/users and GET /api/users?email=
// With an email query parameter this is a single-user lookup; without it the
// full user list is returned (no pagination).
func (h *UserHandler) List(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		user, err := h.Svc.GetByEmail(c.Request.Context(), email)
		if err != nil {
			h.fail(c, err)
			return
		}
		if user == nil {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Success(c, http.StatusOK, user, "user retrieved")
		return
	}

	users, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users retrieved")
}
