package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/events"
	"github.com/jafarshop/weblarek/internal/session"
	"github.com/jafarshop/weblarek/internal/view"
	"github.com/jafarshop/weblarek/pkg/errors"
)

// maxIntentSize bounds the request body of one intent
const maxIntentSize = 64 << 10

// IntentResponse is returned after an intent was handled
type IntentResponse struct {
	Step   domain.CheckoutStep `json:"step"`
	Screen view.ScreenState    `json:"screen"`
}

// HandleIntent handles POST /v1/intents.
// The body is the intent payload plus an "event" field naming the intent.
func HandleIntent(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxIntentSize))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}
		if !gjson.ValidBytes(body) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
			return
		}

		name := gjson.GetBytes(body, "event")
		if name.Type != gjson.String || name.String() == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": "event is required",
			})
			return
		}

		intent, err := events.ParseIntent(events.Name(name.String()), body)
		if err != nil {
			var unknown *errors.ErrUnknownEvent
			if stderrors.As(err, &unknown) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := sess.Dispatch(intent); err != nil {
			writeError(c, err, logger)
			return
		}

		step, screen := sess.StepAndScreen()
		c.JSON(http.StatusOK, IntentResponse{
			Step:   step,
			Screen: screen,
		})
	}
}

// writeError maps handler failures to HTTP statuses
func writeError(c *gin.Context, err error, logger *zap.Logger) {
	var (
		validation *errors.ErrValidation
		transition *errors.ErrInvalidStateTransition
		notFound   *errors.ErrNotFound
		apiErr     *errors.ErrAPI
	)

	switch {
	case stderrors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": validation.Fields,
		})
	case stderrors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": transition.Error()})
	case stderrors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case stderrors.As(err, &apiErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Error()})
	default:
		logger.Error("Intent failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
