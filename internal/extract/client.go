package extract

import (
	"context"
)

// Client sends one menu image to the vision model endpoint and
// returns the raw text it produced. One attempt, no backoff.
type Client interface {
	ExtractMenu(ctx context.Context, imageJPEG []byte) (string, error)
}

// ClientFactory builds a client bound to a resolved API key.
// The key can change per request, so clients are constructed
// per extraction run.
type ClientFactory func(apiKey string) Client
