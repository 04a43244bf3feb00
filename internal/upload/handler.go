package upload

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zillion-dines/menu-generator/internal/menu"
)

// per-file cap, matches what menu scans realistically weigh
const maxFileBytes = 32 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Upload menu files (multipart, one or more)
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form with 'files' is required"})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	batch := make([]Incoming, 0, len(headers))
	for _, header := range headers {
		if header.Size > maxFileBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large: " + header.Filename})
			return
		}

		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file: " + header.Filename})
			return
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file: " + header.Filename})
			return
		}

		batch = append(batch, Incoming{Filename: header.Filename, Data: data})
	}

	result, err := h.service.Upload(c.Request.Context(), c.Param("id"), batch)
	if err != nil {
		if errors.Is(err, menu.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusCreated
	if len(result.Files) == 0 {
		// nothing accepted, session untouched
		status = http.StatusBadRequest
	}

	c.JSON(status, result)
}
