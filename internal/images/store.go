package images

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Upload is a file received with a request.
type Upload struct {
	Field    string
	Filename string
	Body     io.Reader
}

// Store keeps uploaded images in a single directory and hands out the bare
// file names that are persisted on the employee row.
type Store struct {
	dir string
	now func() time.Time
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("images: create dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save writes the upload as {field}_{unix millis}{ext} and returns that name.
func (s *Store) Save(upload Upload) (string, error) {
	field := upload.Field
	if field == "" {
		field = "image"
	}
	ext := strings.ToLower(filepath.Ext(filepath.Base(upload.Filename)))
	name := field + "_" + strconv.FormatInt(s.now().UnixMilli(), 10) + ext

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("images: create %s: %w", name, err)
	}
	if _, err := io.Copy(f, upload.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("images: write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("images: close %s: %w", name, err)
	}
	return name, nil
}

// Remove deletes a stored image. A file that is already gone is not an error.
func (s *Store) Remove(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("images: remove %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("images: invalid name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}
