package menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrSessionNotFound is returned by ItemStore implementations
// when the session id does not exist.
var ErrSessionNotFound = errors.New("session not found")

// ItemStore is the slice of session state the editor needs.
// Implemented by session.Store.
type ItemStore interface {
	Items(sessionID string) ([]Item, error)
	UpdateItem(sessionID string, index int, apply func(*Item) error) (Item, error)
}

type Handler struct {
	store ItemStore
}

func NewHandler(store ItemStore) *Handler {
	return &Handler{store: store}
}

// --------------------------------------------------
// List extracted rows
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.store.Items(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// --------------------------------------------------
// Edit one cell of one row
// --------------------------------------------------
func (h *Handler) Edit(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item index"})
		return
	}

	var edit Edit
	if err := c.BindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid edit payload"})
		return
	}

	item, err := h.store.UpdateItem(c.Param("id"), index, func(it *Item) error {
		return ApplyEdit(it, edit)
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}
