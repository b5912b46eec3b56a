package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/recetario-api/internal/interface/http"
	"github.com/oksasatya/recetario-api/internal/interface/middleware"
)

// RecipeModule wires recipe routes under /recetas. Reads are public,
// mutations require a bearer token.
type RecipeModule struct {
	Handler *handlers.RecipeHandler
	Auth    gin.HandlerFunc
	Redis   *redis.Client
	Allow   middleware.AllowFunc
}

func NewRecipeModule(h *handlers.RecipeHandler, auth gin.HandlerFunc, rdb *redis.Client, allow middleware.AllowFunc) *RecipeModule {
	return &RecipeModule{Handler: h, Auth: auth, Redis: rdb, Allow: allow}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/recetas")

	readLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), m.Allow)
	g.GET("", readLimiter, m.Handler.List)
	g.GET("/buscar", readLimiter, m.Handler.Search)
	g.GET("/texto", readLimiter, m.Handler.FullText)
	g.GET("/usuario/:usuarioId", readLimiter, m.Handler.ListByAuthor)
	g.GET("/:id", readLimiter, m.Handler.Get)

	auth := g.Group("")
	auth.Use(m.Auth, middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), m.Allow))
	{
		auth.POST("/crear", m.Handler.Create)
		auth.PUT("/actualizar/:id", m.Handler.Update)
		auth.DELETE("/eliminar/:id", m.Handler.Delete)
		auth.POST("/imagen/:id", m.Handler.UploadImage)
	}
}
