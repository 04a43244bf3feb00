package extract

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zillion-dines/menu-generator/internal/menu"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Run extraction for a session
// --------------------------------------------------
// The API key resolves in order: request body, X-API-Key header
// (set by the middleware), key remembered on the session, then
// the OPENAI_API_KEY env default.
func (h *Handler) Extract(c *gin.Context) {
	var req struct {
		APIKey string `json:"api_key"`
	}
	// body is optional
	_ = c.ShouldBindJSON(&req)

	if req.APIKey == "" {
		req.APIKey = c.GetString("apiKey")
	}

	result, err := h.service.Run(c.Request.Context(), c.Param("id"), req.APIKey)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingAPIKey):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
		case errors.Is(err, ErrNoSelection):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, menu.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
