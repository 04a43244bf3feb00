package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/zillion-dines/menu-generator/internal/menu"
	"github.com/zillion-dines/menu-generator/internal/render"
	"github.com/zillion-dines/menu-generator/internal/upload"
)

// Session is the per-browser-session mutable context threaded
// through every pipeline stage: uploads, rendered images, the
// current selection and the extracted rows. It never outlives
// the process and is torn down on delete, reset or expiry.
type Session struct {
	ID         string
	CreatedAt  time.Time
	LastActive time.Time

	// entered once via the UI, never persisted to disk
	APIKey string

	Files     []upload.File
	Images    []render.Image
	Selection []string
	Items     []menu.Item
}

func newSession() *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.New().String(),
		CreatedAt:  now,
		LastActive: now,
	}
}
