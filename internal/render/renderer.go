package render

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png"
	"log"

	"github.com/gen2brain/go-fitz"
	"github.com/google/uuid"
)

const (
	// fixed raster resolution for PDF pages
	pageDPI = 144

	jpegQuality = 85
)

// Renderer turns an uploaded file into submission-ready images.
// PDFs produce one image per page; native images pass through.
type Renderer interface {
	Render(ctx context.Context, filename, mimeType string, data []byte) ([]Image, error)
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Render(ctx context.Context, filename, mimeType string, data []byte) ([]Image, error) {
	if mimeType == "application/pdf" {
		return s.renderPDF(ctx, filename, data)
	}
	return s.renderNative(filename, data)
}

// --------------------------------------------------
// PDF: one image per page at fixed DPI
// --------------------------------------------------
func (s *Service) renderPDF(ctx context.Context, filename string, data []byte) ([]Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, &ConversionError{Filename: filename, Err: err}
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return nil, &ConversionError{Filename: filename, Err: errNoPages}
	}

	images := make([]Image, 0, pageCount)

	for page := 0; page < pageCount; page++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(page, pageDPI)
		if err != nil {
			return nil, &ConversionError{Filename: filename, Err: err}
		}

		encoded, err := encodeJPEG(img)
		if err != nil {
			return nil, &ConversionError{Filename: filename, Err: err}
		}

		bounds := img.Bounds()
		images = append(images, Image{
			ID:     uuid.New().String(),
			Page:   page + 1,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			Data:   encoded,
		})
	}

	log.Printf("RENDER_DONE file=%s pages=%d", filename, pageCount)

	return images, nil
}

// --------------------------------------------------
// JPEG/PNG: re-encode as JPEG, single image
// --------------------------------------------------
func (s *Service) renderNative(filename string, data []byte) ([]Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ConversionError{Filename: filename, Err: err}
	}

	encoded, err := encodeJPEG(img)
	if err != nil {
		return nil, &ConversionError{Filename: filename, Err: err}
	}

	bounds := img.Bounds()

	return []Image{{
		ID:     uuid.New().String(),
		Page:   1,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Data:   encoded,
	}}, nil
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
