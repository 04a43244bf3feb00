package upload

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/zillion-dines/menu-generator/internal/render"
)

// Store is the slice of session state uploading needs.
// Implemented by session.Store.
type Store interface {
	AddFile(sessionID string, file File, images []render.Image) error
}

// FileError reports one rejected or unconvertible file in a
// batch. Other files in the batch are unaffected.
type FileError struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// Result of one upload batch.
type Result struct {
	Files  []File      `json:"files"`
	Images int         `json:"images"`
	Errors []FileError `json:"errors,omitempty"`
}

// Incoming is one file pulled out of the multipart form.
type Incoming struct {
	Filename string
	Data     []byte
}

type Service struct {
	store    Store
	renderer render.Renderer
}

func NewService(store Store, renderer render.Renderer) *Service {
	return &Service{store: store, renderer: renderer}
}

// --------------------------------------------------
// Upload a batch of files
// --------------------------------------------------
// Each file is validated, rasterized and appended to the
// session independently. An invalid or corrupt file yields a
// per-file error and leaves the session untouched for that
// file; valid siblings still go through.
func (s *Service) Upload(ctx context.Context, sessionID string, batch []Incoming) (*Result, error) {
	if len(batch) == 0 {
		return nil, errors.New("no files in request")
	}

	result := &Result{Files: []File{}}

	for _, in := range batch {
		mimeType, err := DetectType(in.Filename, in.Data)
		if err != nil {
			result.Errors = append(result.Errors, FileError{
				Filename: in.Filename,
				Error:    err.Error(),
			})
			continue
		}

		images, err := s.renderer.Render(ctx, in.Filename, mimeType, in.Data)
		if err != nil {
			result.Errors = append(result.Errors, FileError{
				Filename: in.Filename,
				Error:    err.Error(),
			})
			continue
		}

		file := File{
			ID:       uuid.New().String(),
			Filename: in.Filename,
			MIMEType: mimeType,
			Data:     in.Data,
		}
		for i := range images {
			images[i].FileID = file.ID
		}

		if err := s.store.AddFile(sessionID, file, images); err != nil {
			// unknown session aborts the whole batch
			return nil, err
		}

		log.Printf("UPLOAD_DONE session=%s file=%s images=%d", sessionID, in.Filename, len(images))

		result.Files = append(result.Files, file)
		result.Images += len(images)
	}

	return result, nil
}
