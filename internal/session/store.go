package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/zillion-dines/menu-generator/internal/menu"
	"github.com/zillion-dines/menu-generator/internal/render"
	"github.com/zillion-dines/menu-generator/internal/upload"
)

// ErrNotFound is returned for unknown session ids. It is the
// same sentinel the editor checks, so every stage agrees on it.
var ErrNotFound = menu.ErrSessionNotFound

// Store holds every live session in memory. Each session is
// mutated by one user interaction at a time, but sessions from
// different browsers arrive concurrently, hence the mutex.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := newSession()
	s.sessions[sess.ID] = sess
	return sess
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Reset clears all pipeline artifacts but keeps the session
// (and its remembered API key) alive.
func (s *Store) Reset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}

	sess.Files = nil
	sess.Images = nil
	sess.Selection = nil
	sess.Items = nil
	sess.LastActive = time.Now()
	return nil
}

// Expire removes sessions idle longer than ttl and reports how
// many were dropped.
func (s *Store) Expire(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0

	for id, sess := range s.sessions {
		if sess.LastActive.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// --------------------------------------------------
// Uploader / renderer state (upload.Store)
// --------------------------------------------------

func (s *Store) AddFile(sessionID string, file upload.File, images []render.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}

	sess.Files = append(sess.Files, file)
	sess.Images = append(sess.Images, images...)
	sess.LastActive = time.Now()
	return nil
}

func (s *Store) FileCount(sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return 0, ErrNotFound
	}
	return len(sess.Files), nil
}

func (s *Store) Images(sessionID string) ([]render.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	images := make([]render.Image, len(sess.Images))
	copy(images, sess.Images)
	return images, nil
}

func (s *Store) Image(sessionID, imageID string) (render.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return render.Image{}, ErrNotFound
	}

	for _, img := range sess.Images {
		if img.ID == imageID {
			return img, nil
		}
	}
	return render.Image{}, fmt.Errorf("image %s not found", imageID)
}

// --------------------------------------------------
// Selector state
// --------------------------------------------------

func (s *Store) SetSelection(sessionID string, imageIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}

	known := make(map[string]bool, len(sess.Images))
	for _, img := range sess.Images {
		known[img.ID] = true
	}
	for _, id := range imageIDs {
		if !known[id] {
			return fmt.Errorf("unknown image id %s", id)
		}
	}

	sess.Selection = append([]string(nil), imageIDs...)
	sess.LastActive = time.Now()
	return nil
}

// SelectedImages returns the subset of rendered images the user
// marked for processing, in selection order (extract.Store).
func (s *Store) SelectedImages(sessionID string) ([]render.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	byID := make(map[string]render.Image, len(sess.Images))
	for _, img := range sess.Images {
		byID[img.ID] = img
	}

	selected := make([]render.Image, 0, len(sess.Selection))
	for _, id := range sess.Selection {
		if img, ok := byID[id]; ok {
			selected = append(selected, img)
		}
	}
	return selected, nil
}

// --------------------------------------------------
// Extractor / editor state (extract.Store, menu.ItemStore)
// --------------------------------------------------

func (s *Store) ReplaceItems(sessionID string, items []menu.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}

	sess.Items = append([]menu.Item(nil), items...)
	sess.LastActive = time.Now()
	return nil
}

func (s *Store) Items(sessionID string) ([]menu.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	items := make([]menu.Item, len(sess.Items))
	copy(items, sess.Items)
	return items, nil
}

// UpdateItem applies one edit under the lock so a read never
// observes a half-applied row.
func (s *Store) UpdateItem(sessionID string, index int, apply func(*menu.Item) error) (menu.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return menu.Item{}, ErrNotFound
	}

	if index < 0 || index >= len(sess.Items) {
		return menu.Item{}, fmt.Errorf("item index %d out of range", index)
	}

	if err := apply(&sess.Items[index]); err != nil {
		return menu.Item{}, err
	}

	sess.LastActive = time.Now()
	return sess.Items[index], nil
}

// --------------------------------------------------
// API key (never persisted)
// --------------------------------------------------

func (s *Store) APIKey(sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return "", ErrNotFound
	}
	return sess.APIKey, nil
}

func (s *Store) SaveAPIKey(sessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	sess.APIKey = key
	return nil
}
