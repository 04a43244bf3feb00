package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// --------------------------------------------------
// Create session
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	sess := h.store.Create()

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"created_at": sess.CreatedAt,
	})
}

// --------------------------------------------------
// Delete session (explicit teardown)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}

// --------------------------------------------------
// Reset session (clear uploads, images, rows)
// --------------------------------------------------
func (h *Handler) Reset(c *gin.Context) {
	if err := h.store.Reset(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session reset"})
}

// --------------------------------------------------
// Set selection (which images go to the model)
// --------------------------------------------------
func (h *Handler) SetSelection(c *gin.Context) {
	var req struct {
		ImageIDs []string `json:"image_ids"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection payload"})
		return
	}

	if err := h.store.SetSelection(c.Param("id"), req.ImageIDs); err != nil {
		if err == ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"selected": len(req.ImageIDs)})
}

// --------------------------------------------------
// List rendered images (metadata only)
// --------------------------------------------------
func (h *Handler) ListImages(c *gin.Context) {
	images, err := h.store.Images(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images, "count": len(images)})
}

// --------------------------------------------------
// Serve one rendered image (thumbnail / preview)
// --------------------------------------------------
func (h *Handler) GetImage(c *gin.Context) {
	img, err := h.store.Image(c.Param("id"), c.Param("imageID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/jpeg", img.Data)
}
