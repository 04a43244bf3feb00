package upload

import (
	"errors"
	"testing"
)

var (
	pdfBytes  = []byte("%PDF-1.4\n%menu")
	pngBytes  = []byte("\x89PNG\r\n\x1a\n0000")
	jpegBytes = []byte("\xff\xd8\xff\xe000JFIF")
)

func TestDetectType_Allowed(t *testing.T) {
	cases := []struct {
		filename string
		data     []byte
		want     string
	}{
		{"menu.pdf", pdfBytes, "application/pdf"},
		{"menu.PDF", pdfBytes, "application/pdf"},
		{"menu.png", pngBytes, "image/png"},
		{"menu.jpg", jpegBytes, "image/jpeg"},
		{"menu.jpeg", jpegBytes, "image/jpeg"},
	}

	for _, tc := range cases {
		got, err := DetectType(tc.filename, tc.data)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.filename, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.filename, tc.want, got)
		}
	}
}

func TestDetectType_RejectedExtension(t *testing.T) {
	for _, filename := range []string{"menu.txt", "menu.gif", "menu", "menu.exe"} {
		if _, err := DetectType(filename, pdfBytes); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("%s: expected ErrUnsupportedType, got %v", filename, err)
		}
	}
}

func TestDetectType_ContentMismatch(t *testing.T) {
	// a PDF renamed to .png must not slip through
	if _, err := DetectType("menu.png", pdfBytes); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType for mismatched content, got %v", err)
	}

	// plain text behind an image extension
	if _, err := DetectType("menu.jpg", []byte("just some text")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType for text content, got %v", err)
	}
}
