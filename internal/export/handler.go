package export

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zillion-dines/menu-generator/internal/menu"
)

type Handler struct {
	store menu.ItemStore
}

func NewHandler(store menu.ItemStore) *Handler {
	return &Handler{store: store}
}

// --------------------------------------------------
// Download current rows as JSON or CSV
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	items, err := h.store.Items(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	switch c.DefaultQuery("format", "json") {

	case "json":
		data, err := JSON(items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+JSONFilename+`"`)
		c.Data(http.StatusOK, "application/json", data)

	case "csv":
		data, err := CSV(items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+CSVFilename+`"`)
		c.Data(http.StatusOK, "text/csv", data)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or csv"})
	}
}
