package storage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRemoteStorage_SaveUploadsMultipartAndParsesResponse(t *testing.T) {
	var gotAuth, gotPartCT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Errorf("expected multipart body: %v", err)
		}
		_, fh, err := r.FormFile("file")
		if err != nil {
			t.Errorf("expected a file part: %v", err)
		} else {
			gotPartCT = fh.Header.Get("Content-Type")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://cdn.example.com/portfolio/abc.jpg",
			"public_id":  "portfolio/abc",
		})
	}))
	defer srv.Close()

	s := NewRemoteStorage(srv.URL, "test-key")
	obj, err := s.Save(context.Background(), "portfolio/abc.jpg", strings.NewReader("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.URL != "https://cdn.example.com/portfolio/abc.jpg" {
		t.Errorf("unexpected url %q", obj.URL)
	}
	if obj.PublicID != "portfolio/abc" {
		t.Errorf("unexpected public id %q", obj.PublicID)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotPartCT != "image/jpeg" {
		t.Errorf("expected part content type forwarded, got %q", gotPartCT)
	}
}

func TestRemoteStorage_SaveUpstreamFailureCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "bad key"})
	}))
	defer srv.Close()

	s := NewRemoteStorage(srv.URL, "bad-key")
	_, err := s.Save(context.Background(), "portfolio/x.png", strings.NewReader("img"), "image/png")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", upstream.StatusCode)
	}
	if upstream.Message != "bad key" {
		t.Errorf("expected upstream message, got %q", upstream.Message)
	}
}

func TestRemoteStorage_DeleteTreats404AsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewRemoteStorage(srv.URL, "")
	if err := s.Delete(context.Background(), "portfolio/x.png"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
