package handlers

import (
	"net/http"

	"touristguide/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/nearby
func (h *Handlers) NearbyPlaces(c *gin.Context) {
	var req models.LocationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	resp, err := h.Nearby.Nearby(req)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
