package storage

import (
	"bytes"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inventory-service/pkg/config"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write multipart body: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("image")
	if err != nil {
		t.Fatalf("failed to read uploaded file: %v", err)
	}
	return header
}

func TestImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(dir)
	if err != nil {
		t.Fatalf("NewImageStore() error = %v", err)
	}

	path, err := store.Save(uploadHeader(t, "photo.png", "fake image bytes"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !strings.HasPrefix(path, "products/") {
		t.Errorf("expected a products/ path, got %q", path)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("expected the original extension, got %q", path)
	}

	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(path)))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(content) != "fake image bytes" {
		t.Errorf("stored content mismatch: %q", content)
	}
}

func TestImageStore_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(dir)
	if err != nil {
		t.Fatalf("NewImageStore() error = %v", err)
	}

	first, err := store.Save(uploadHeader(t, "photo.png", "one"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second, err := store.Save(uploadHeader(t, "photo.png", "two"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if first == second {
		t.Errorf("expected unique stored names, both were %q", first)
	}
}

func TestInit_CreatesDefaultImage(t *testing.T) {
	dir := t.TempDir()
	err := Init(&config.MediaConfig{Dir: dir, DefaultImage: "products/default.png"})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "products", "default.png"))
	if err != nil {
		t.Fatalf("default image missing: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("default image is not a valid PNG: %v", err)
	}
}

func TestImageStore_RejectsUnknownTypes(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewImageStore() error = %v", err)
	}

	if _, err := store.Save(uploadHeader(t, "notes.txt", "plain text")); err == nil {
		t.Error("expected an error for a non-image upload")
	}
}

func TestSave_Uninitialized(t *testing.T) {
	store = nil
	if _, err := Save(uploadHeader(t, "photo.png", "x")); err == nil {
		t.Error("expected an error when the store is not initialized")
	}
}
