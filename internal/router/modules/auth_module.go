package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/foodhub-app/user-service/internal/interface/http"
)

// AuthModule wires the public Google login endpoint.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/google", m.Handler.GoogleLogin)
}
