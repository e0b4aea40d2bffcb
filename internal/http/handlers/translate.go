package handlers

import (
	"net/http"

	"touristguide/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/translate
func (h *Handlers) Translate(c *gin.Context) {
	var req models.TranslationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	resp, err := h.Translation.Translate(req)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
