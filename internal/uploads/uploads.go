// Package uploads stores citizen-supplied attachments on local disk under
// random names. Stored names are opaque (uuid + original extension), so the
// original filename never reaches the filesystem and collisions cannot
// happen.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxSize is the per-file upload cap.
const MaxSize = 5 << 20 // 5 MiB

var (
	// ErrUnsupportedType rejects extensions outside the allow-list.
	ErrUnsupportedType = errors.New("unsupported attachment type")

	// ErrTooLarge rejects files over MaxSize.
	ErrTooLarge = errors.New("attachment too large")

	// ErrNotFound is returned when a stored attachment does not exist.
	ErrNotFound = errors.New("attachment not found")
)

// Kind restricts which extensions an upload may carry. Grievances accept
// documents too; community posts are images only.
type Kind int

const (
	KindAny   Kind = iota // jpg, jpeg, png, pdf
	KindImage             // jpg, jpeg, png
)

func allowed(kind Kind, ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return true
	case ".pdf":
		return kind == KindAny
	}
	return false
}

// Store writes attachments under one directory.
type Store struct {
	dir string
}

// NewStore prepares an attachment store rooted at dir, creating it when
// missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save reads one attachment from r and stores it under a generated name,
// which it returns. filename contributes only its extension. Reads stop at
// MaxSize + 1, so an oversized upload fails without buffering the whole
// stream.
func (s *Store) Save(filename string, r io.Reader, kind Kind) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowed(kind, ext) {
		return "", ErrUnsupportedType
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("read attachment: %w", err)
	}
	if len(data) > MaxSize {
		return "", ErrTooLarge
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store attachment: %w", err)
	}
	return name, nil
}

// Path resolves a stored name to its on-disk path. Names that are not plain
// base names (path separators, "..") are rejected, so stored-name input can
// never escape the attachment directory.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrNotFound
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}
