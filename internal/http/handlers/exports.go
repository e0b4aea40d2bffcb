package handlers

import (
	"net/http"
	"strings"
	"time"

	"touristguide/internal/domain"
	"touristguide/internal/http/middleware"
	"touristguide/internal/services"
	"touristguide/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) exportService(c *gin.Context) services.ExportService {
	return services.ExportService{
		Loader:    h.Trips.GetItinerary,
		Logger:    h.Logger,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/itineraries/:id/pdf
func (h *Handlers) ItineraryPDF(c *gin.Context) {
	pdfBytes, filename, err := h.exportService(c).GeneratePDF(c.Param("id"))
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/itineraries/:id/ics?start=YYYY-MM-DD
func (h *Handlers) ItineraryICS(c *gin.Context) {
	start := time.Now().UTC().AddDate(0, 0, 1)
	if raw := strings.TrimSpace(c.Query("start")); raw != "" {
		parsed, err := utils.ParseDate(raw, time.UTC)
		if err != nil {
			h.RespondDomainError(c, domain.ValidationError{Field: "start", Msg: "must be a YYYY-MM-DD date", Err: err})
			return
		}
		start = parsed
	}

	body, filename, err := h.exportService(c).GenerateICS(c.Param("id"), start)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}
