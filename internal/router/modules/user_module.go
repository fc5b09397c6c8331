package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/foodhub-app/user-service/internal/interface/http"
	"github.com/foodhub-app/user-service/internal/interface/middleware"
	"github.com/foodhub-app/user-service/pkg/helpers"
)

// UserModule wires the user query/mutation routes. Every route requires a
// valid session token.
//
// Protected: POST /api/users, PUT /api/users/:id, GET /api/users/:id,
// GET /api/users (optionally filtered by ?email=)
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.JWT))
	{
		users.POST("", m.Handler.Create)
		users.PUT("/:id", m.Handler.Update)
		users.GET("/:id", m.Handler.GetByID)
		users.GET("", m.Handler.List)
	}
}
