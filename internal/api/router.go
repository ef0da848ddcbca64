package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/weblarek/internal/api/handlers"
	"github.com/jafarshop/weblarek/internal/config"
	"github.com/jafarshop/weblarek/internal/session"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, sess *session.Session, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(sessionHeader(sess))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/screen", handlers.HandleGetScreen(sess))
		v1.GET("/state", handlers.HandleGetState(sess))
		v1.POST("/intents", handlers.HandleIntent(sess, logger))
		v1.POST("/catalog/reload", handlers.HandleReloadCatalog(sess, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

func sessionHeader(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Session-ID", sess.ID)
		c.Next()
	}
}
