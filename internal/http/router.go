package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scripture-llm/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	limiter service.RateLimiter,
	interpretH *InterpretHandler,
	passageH *PassageHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y CORS.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(rateLimitMiddleware(limiter))

	api.POST("/analyze", interpretH.Analyze)
	api.POST("/search", interpretH.Search)
	api.POST("/cross-references", interpretH.CrossReferences)
	api.POST("/word-study", interpretH.WordStudy)
	api.GET("/daily", interpretH.Daily)

	api.POST("/compare", passageH.Compare)
	api.GET("/translations", passageH.Translations)
	api.GET("/usage", passageH.Usage)

	return r
}
