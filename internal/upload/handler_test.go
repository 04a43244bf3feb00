package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func multipartBody(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("files", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	return body, writer.FormDataContentType()
}

func setupUploadRouter(store Store, renderer *fakeRenderer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(store, renderer))
	r.POST("/sessions/:id/uploads", handler.Upload)

	return r
}

func TestUploadHandler_Created(t *testing.T) {
	store := &fakeStore{}
	router := setupUploadRouter(store, &fakeRenderer{pages: 2})

	body, contentType := multipartBody(t, "menu.pdf", pdfBytes)
	req := httptest.NewRequest("POST", "/sessions/sess-1/uploads", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp Result
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Images != 2 {
		t.Fatalf("expected 2 images, got %d", resp.Images)
	}
}

func TestUploadHandler_RejectedType(t *testing.T) {
	store := &fakeStore{}
	router := setupUploadRouter(store, &fakeRenderer{pages: 1})

	body, contentType := multipartBody(t, "notes.txt", []byte("hello"))
	req := httptest.NewRequest("POST", "/sessions/sess-1/uploads", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(store.files) != 0 {
		t.Fatal("rejected upload must not reach the store")
	}
}

func TestUploadHandler_MissingFiles(t *testing.T) {
	router := setupUploadRouter(&fakeStore{}, &fakeRenderer{pages: 1})

	req := httptest.NewRequest("POST", "/sessions/sess-1/uploads", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
