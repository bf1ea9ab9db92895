package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorage_SaveWritesFileAndBuildsURL(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "http://localhost:5000")

	obj, err := s.Save(context.Background(), "portfolio/abc.png", strings.NewReader("fake-image"), "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.URL != "http://localhost:5000/uploads/portfolio/abc.png" {
		t.Errorf("unexpected url %q", obj.URL)
	}
	if obj.PublicID != "portfolio/abc.png" {
		t.Errorf("unexpected public id %q", obj.PublicID)
	}

	data, err := os.ReadFile(filepath.Join(dir, "portfolio", "abc.png"))
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if string(data) != "fake-image" {
		t.Errorf("unexpected file contents %q", data)
	}
}

func TestLocalStorage_DeleteRemovesFile(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "http://localhost:5000")

	if _, err := s.Save(context.Background(), "portfolio/gone.jpg", strings.NewReader("x"), "image/jpeg"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete(context.Background(), "portfolio/gone.jpg"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "portfolio", "gone.jpg")); !os.IsNotExist(err) {
		t.Error("expected file removed")
	}
}

func TestLocalStorage_DeleteMissingIsNotAnError(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "http://localhost:5000")

	if err := s.Delete(context.Background(), "portfolio/never-existed.png"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
