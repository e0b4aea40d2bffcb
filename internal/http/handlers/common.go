package handlers

import (
	"net/http"

	"touristguide/internal/http/middleware"
	"touristguide/internal/logger"
	"touristguide/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers holds the services behind the API routes.
type Handlers struct {
	Trips       services.TripService
	Nearby      services.NearbyService
	Translation services.TranslationService
	Logger      logger.Logger

	engine *gin.Engine
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "invalid_payload", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", err.Error())
		return false
	}
	return true
}

func (h *Handlers) requestLogger(c *gin.Context) logger.Logger {
	if h.Logger == nil {
		return logger.NewNoOpLogger()
	}
	return h.Logger.WithFields(map[string]interface{}{"request_id": middleware.GetRequestID(c)})
}
