package storage

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"inventory-service/pkg/config"

	"github.com/google/uuid"
)

// ImageStore writes uploaded product images to a local media directory.
// Stored paths are relative to the media root and served under /media.
type ImageStore struct {
	dir string
}

// store is the package-level instance, initialized from configuration the
// same way the database package exposes its handle.
var store *ImageStore

// Init prepares the media directory and the package-level store, and makes
// sure the configured default image resolves to a servable file.
func Init(cfg *config.MediaConfig) error {
	s, err := NewImageStore(cfg.Dir)
	if err != nil {
		return err
	}
	if err := s.ensureDefaultImage(cfg.DefaultImage); err != nil {
		return err
	}
	store = s
	return nil
}

// ensureDefaultImage writes a placeholder at the default image path when no
// file is there yet. Products created without an upload reference this path.
func (s *ImageStore) ensureDefaultImage(path string) error {
	if path == "" {
		return nil
	}

	full := filepath.Join(s.dir, filepath.FromSlash(path))
	if _, err := os.Stat(full); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create default image: %w", err)
	}
	defer f.Close()
	return png.Encode(f, image.NewRGBA(image.Rect(0, 0, 1, 1)))
}

// NewImageStore creates an image store rooted at dir.
func NewImageStore(dir string) (*ImageStore, error) {
	if dir == "" {
		return nil, errors.New("media directory is required")
	}
	if err := os.MkdirAll(filepath.Join(dir, "products"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// imageExtensions are the upload types the store accepts.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Save stores the uploaded file under products/ with a unique name and
// returns the media-relative path.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := filepath.Join("products", uuid.New().String()+ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return filepath.ToSlash(name), nil
}

// Save stores the file through the package-level store.
func Save(file *multipart.FileHeader) (string, error) {
	if store == nil {
		return "", errors.New("image store is not initialized")
	}
	return store.Save(file)
}
