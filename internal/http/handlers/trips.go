package handlers

import (
	"net/http"

	"touristguide/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/plan-trip
func (h *Handlers) PlanTrip(c *gin.Context) {
	var req models.TripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	planned, err := h.Trips.PlanTrip(c.Request.Context(), req)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, planned)
}

// GET /api/itineraries/:id
func (h *Handlers) GetItinerary(c *gin.Context) {
	planned, err := h.Trips.GetItinerary(c.Param("id"))
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, planned)
}

// GET /api/history
func (h *Handlers) History(c *gin.Context) {
	entries, err := h.Trips.ListHistory(c.Request.Context())
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
