package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/weblarek/internal/session"
)

// HandleGetScreen handles GET /v1/screen
func HandleGetScreen(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sess.Screen())
	}
}

// HandleGetState handles GET /v1/state
func HandleGetState(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// HandleReloadCatalog handles POST /v1/catalog/reload
func HandleReloadCatalog(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sess.LoadCatalog(c.Request.Context()); err != nil {
			logger.Error("Catalog reload failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load catalog"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": len(sess.Catalog())})
	}
}
