package session

import (
	"context"
	"log"
	"time"
)

// Sweeper drops sessions that have been idle past the TTL,
// covering browsers that disappear without an explicit delete.
type Sweeper struct {
	store    *Store
	ttl      time.Duration
	interval time.Duration
}

func NewSweeper(store *Store, ttl, interval time.Duration) *Sweeper {
	return &Sweeper{store: store, ttl: ttl, interval: interval}
}

// Run blocks until ctx is cancelled.
func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("session sweeper started ttl=%s interval=%s", w.ttl, w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("session sweeper stopped")
			return
		case <-ticker.C:
			if removed := w.store.Expire(w.ttl); removed > 0 {
				log.Printf("SESSION_EXPIRED count=%d", removed)
			}
		}
	}
}
