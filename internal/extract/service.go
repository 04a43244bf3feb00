package extract

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/zillion-dines/menu-generator/internal/menu"
	"github.com/zillion-dines/menu-generator/internal/render"
)

// Store is the slice of session state extraction needs.
// Implemented by session.Store.
type Store interface {
	SelectedImages(sessionID string) ([]render.Image, error)
	ReplaceItems(sessionID string, items []menu.Item) error
	APIKey(sessionID string) (string, error)
	SaveAPIKey(sessionID, key string) error
}

var ErrNoSelection = errors.New("no images selected")

// ImageError is one per-image failure in a run.
type ImageError struct {
	ImageID string `json:"image_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Result of one extraction run over the current selection.
type Result struct {
	Items  []menu.Item  `json:"items"`
	Errors []ImageError `json:"errors,omitempty"`
}

type Service struct {
	store     Store
	newClient ClientFactory
}

func NewService(store Store, newClient ClientFactory) *Service {
	return &Service{store: store, newClient: newClient}
}

// --------------------------------------------------
// Run extraction over the session's selected images
// --------------------------------------------------
// A new run replaces the session's rows entirely. Failures are
// collected per image; one unreachable page does not abort the
// rest of the batch.
func (s *Service) Run(ctx context.Context, sessionID, apiKeyOverride string) (*Result, error) {
	key, err := s.resolveAPIKey(sessionID, apiKeyOverride)
	if err != nil {
		return nil, err
	}

	images, err := s.store.SelectedImages(sessionID)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrNoSelection
	}

	client := s.newClient(key)
	result := &Result{Items: []menu.Item{}}

	for _, img := range images {
		text, err := client.ExtractMenu(ctx, img.Data)
		if err != nil {
			kind := KindEndpoint
			if errors.Is(err, errUnauthorized) {
				kind = KindAuth
			}
			s.recordFailure(result, img.ID, kind, err)
			continue
		}

		items, err := ParseItems(text)
		if err != nil {
			s.recordFailure(result, img.ID, KindParse, err)
			continue
		}

		log.Printf("EXTRACT_DONE image=%s items=%d", img.ID, len(items))
		result.Items = append(result.Items, items...)
	}

	if err := s.store.ReplaceItems(sessionID, result.Items); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) resolveAPIKey(sessionID, override string) (string, error) {
	if override != "" {
		// remember it for subsequent runs in this session
		if err := s.store.SaveAPIKey(sessionID, override); err != nil {
			return "", err
		}
		return override, nil
	}

	key, err := s.store.APIKey(sessionID)
	if err != nil {
		return "", err
	}
	if key != "" {
		return key, nil
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	return "", ErrMissingAPIKey
}

func (s *Service) recordFailure(result *Result, imageID, kind string, err error) {
	extErr := &ExtractionError{ImageID: imageID, Kind: kind, Err: err}
	log.Printf("EXTRACT_FAILED image=%s kind=%s err=%v", imageID, kind, err)

	result.Errors = append(result.Errors, ImageError{
		ImageID: imageID,
		Kind:    kind,
		Message: extErr.Err.Error(),
	})
}
