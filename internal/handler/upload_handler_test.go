package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/devfolio/backend/internal/storage"
)

// ---------------------------------------------------------------------------
// Mock Storage
// ---------------------------------------------------------------------------

type mockStorage struct {
	saveFunc func(ctx context.Context, key string, data io.Reader, contentType string) (*storage.Object, error)
}

func (m *mockStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (*storage.Object, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, key, data, contentType)
	}
	return &storage.Object{URL: "http://localhost:5000/uploads/" + key, PublicID: key}, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error { return nil }

// multipartImage builds a multipart body with one "image" part of the given
// content type.
func multipartImage(t *testing.T, fieldName, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="photo.jpg"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadHandler_Upload_Success(t *testing.T) {
	var gotKey, gotCT string
	mock := &mockStorage{
		saveFunc: func(ctx context.Context, key string, data io.Reader, contentType string) (*storage.Object, error) {
			gotKey, gotCT = key, contentType
			return &storage.Object{URL: "https://cdn.example.com/" + key, PublicID: key}, nil
		},
	}
	h := NewUploadHandler(mock)

	body, ct := multipartImage(t, "image", "image/png", []byte("fake-png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(gotKey, "portfolio/") || !strings.HasSuffix(gotKey, ".png") {
		t.Errorf("expected a portfolio/<uuid>.png key, got %q", gotKey)
	}
	if gotCT != "image/png" {
		t.Errorf("expected content type forwarded, got %q", gotCT)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			URL      string `json:"url"`
			PublicID string `json:"public_id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Data.URL == "" || resp.Data.PublicID == "" {
		t.Errorf("expected success with url and public_id, got %+v", resp)
	}
}

func TestUploadHandler_Upload_MissingFileReturns400(t *testing.T) {
	h := NewUploadHandler(&mockStorage{})

	body, ct := multipartImage(t, "wrong_field", "image/png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUploadHandler_Upload_DisallowedTypeReturns400(t *testing.T) {
	called := false
	mock := &mockStorage{
		saveFunc: func(ctx context.Context, key string, data io.Reader, contentType string) (*storage.Object, error) {
			called = true
			return nil, nil
		},
	}
	h := NewUploadHandler(mock)

	body, ct := multipartImage(t, "image", "application/pdf", []byte("%PDF-"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("expected the type check to reject before any storage call")
	}
}

func TestUploadHandler_Upload_OversizedReturns400(t *testing.T) {
	h := NewUploadHandler(&mockStorage{})

	body, ct := multipartImage(t, "image", "image/jpeg", bytes.Repeat([]byte("x"), maxImageSize+2<<20))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "file_too_large") {
		t.Errorf("expected file_too_large code, got %s", rec.Body.String())
	}
}

func TestUploadHandler_Upload_MalformedMultipartReturns400(t *testing.T) {
	h := NewUploadHandler(&mockStorage{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader("not a multipart body"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_multipart") {
		t.Errorf("expected invalid_multipart code, got %s", rec.Body.String())
	}
}

func TestUploadHandler_Upload_UpstreamFailurePassesStatus(t *testing.T) {
	mock := &mockStorage{
		saveFunc: func(ctx context.Context, key string, data io.Reader, contentType string) (*storage.Object, error) {
			return nil, &storage.UpstreamError{StatusCode: http.StatusForbidden, Message: "denied"}
		},
	}
	h := NewUploadHandler(mock)

	body, ct := multipartImage(t, "image", "image/gif", []byte("GIF89a"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected upstream 403 passed through, got %d", rec.Code)
	}
}

func TestUploadHandler_Upload_UnreachableUpstreamReturns502(t *testing.T) {
	mock := &mockStorage{
		saveFunc: func(ctx context.Context, key string, data io.Reader, contentType string) (*storage.Object, error) {
			return nil, &storage.UpstreamError{StatusCode: 0, Message: "connection refused"}
		},
	}
	h := NewUploadHandler(mock)

	body, ct := multipartImage(t, "image", "image/jpeg", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
}
