// Package media stores uploaded post images on disk and serves them
// back over HTTP.
package media

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	// ErrUnsupportedType is returned when an upload is not a JPEG, PNG,
	// or GIF image. The HTTP layer reports it as a validation failure.
	ErrUnsupportedType = errors.New("unsupported image type")

	// ErrTooLarge is returned when an upload exceeds MaxImageBytes.
	ErrTooLarge = errors.New("image too large")
)

// MaxImageBytes caps the size of a stored attachment.
const MaxImageBytes = 10 << 20

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// Store saves attachments under a single directory with random
// filenames, so user-chosen names never reach the filesystem.
type Store struct {
	dir string
}

// NewStore creates the media directory if needed and returns a store
// rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save reads the upload, checks its sniffed content type, and writes it
// under a fresh name. Returns the stored filename.
func (s *Store) Save(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxImageBytes {
		return "", ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if _, ok := allowedTypes[mt.String()]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	name := uuid.NewString() + mt.Extension()
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// Open returns the stored file for reading. Missing files are reported
// with os.ErrNotExist.
func (s *Store) Open(name string) (*os.File, error) {
	return os.Open(filepath.Join(s.dir, filepath.Base(name)))
}

// Remove deletes a stored file. Removing a missing file is a no-op.
func (s *Store) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Handler serves stored files over HTTP.
func (s *Store) Handler() http.Handler {
	return http.FileServer(http.Dir(s.dir))
}
