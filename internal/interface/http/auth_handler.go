package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/foodhub-app/user-service/internal/application"
	"github.com/foodhub-app/user-service/pkg/response"
	"github.com/foodhub-app/user-service/pkg/validation"
)

// AuthHandler exposes the Google login endpoint.
type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type googleAuthRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// GoogleLogin POST /api/auth/google
// Validates the Google ID token and returns the resolved user with a session
// token. A rejected token yields 401 with no detail about why verification
// failed; any other failure yields a generic 500.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req googleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	log := h.Logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"ip":         clientIP(c),
	})
	log.Info("google authentication request")

	result, err := h.Auth.Login(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, application.ErrAuthRejected) {
			log.Warn("google authentication rejected")
			response.Error(c, http.StatusUnauthorized, "invalid google token", nil)
			return
		}
		log.WithError(err).Error("google authentication failed")
		response.Error(c, http.StatusInternalServerError, "authentication failed", nil)
		return
	}

	log.WithField("user_id", result.UserID).Info("google authentication completed")
	response.Success(c, http.StatusOK, result, "authentication successful")
}
