package extract

import (
	"errors"
	"fmt"
)

// Failure kinds, reported per image so one bad page never
// aborts the rest of the run.
const (
	KindEndpoint = "endpoint"
	KindAuth     = "auth"
	KindParse    = "parse"
)

var (
	ErrMissingAPIKey = errors.New("no API key provided")

	// errUnauthorized marks a 401/403 from the endpoint
	errUnauthorized = errors.New("endpoint rejected credentials")
)

// ExtractionError wraps a per-image failure with its kind.
type ExtractionError struct {
	ImageID string
	Kind    string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for image %s (%s): %v", e.ImageID, e.Kind, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
