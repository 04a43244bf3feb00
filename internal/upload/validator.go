package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

var ErrUnsupportedType = errors.New("file type not allowed (PDF, JPEG or PNG only)")

var allowedExt = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

var allowedMIME = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// DetectType validates a file by extension AND sniffed content,
// so a renamed .exe does not slip through as menu.pdf. Returns
// the canonical mime type.
func DetectType(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExt[ext]; !ok {
		return "", ErrUnsupportedType
	}

	sniffed := http.DetectContentType(data)
	// DetectContentType appends charset params for text types
	sniffed = strings.TrimSpace(strings.Split(sniffed, ";")[0])

	if !allowedMIME[sniffed] {
		return "", ErrUnsupportedType
	}

	if allowedExt[ext] != sniffed {
		return "", ErrUnsupportedType
	}

	return sniffed, nil
}
