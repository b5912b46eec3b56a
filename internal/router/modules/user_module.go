package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/recetario-api/internal/interface/http"
	"github.com/oksasatya/recetario-api/internal/interface/middleware"
)

// UserModule wires account routes under /usuarios.
// Public: POST /crear, POST /login
// Protected: GET /:id, PUT /modificar/:id, DELETE /eliminar/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
	Redis   *redis.Client
	Allow   middleware.AllowFunc
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc, rdb *redis.Client, allow middleware.AllowFunc) *UserModule {
	return &UserModule{Handler: h, Auth: auth, Redis: rdb, Allow: allow}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/usuarios")

	// Public with rate limiting
	registerLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), m.Allow)
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), m.Allow)
	g.POST("/crear", registerLimiter, m.Handler.Register)
	g.POST("/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := g.Group("")
	auth.Use(m.Auth, middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), m.Allow))
	{
		auth.GET("/:id", m.Handler.GetProfile)
		auth.PUT("/modificar/:id", m.Handler.UpdateProfile)
		auth.DELETE("/eliminar/:id", m.Handler.DeleteAccount)
	}
}
