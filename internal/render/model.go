package render

import "fmt"

// Image is one rasterized page (or one native image upload),
// immutable once created. Data is always JPEG so every image
// goes to the vision model in the same format.
type Image struct {
	ID     string `json:"id"`
	FileID string `json:"file_id"`
	Page   int    `json:"page"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   []byte `json:"-"`
}

// ConversionError reports a per-file rasterization failure.
// It never aborts the rest of an upload batch.
type ConversionError struct {
	Filename string
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s: %v", e.Filename, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
