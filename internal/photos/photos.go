// Package photos stores uploaded visit photos on local disk and hands back
// the URL they will be served under.
package photos

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrUnsupportedType indicates an upload with a content type that is
	// not an image.
	ErrUnsupportedType = errors.New("unsupported photo type")
	// ErrTooLarge indicates an upload exceeding the size cap.
	ErrTooLarge = errors.New("photo too large")
)

// maxPhotoBytes caps a single upload at 10 MiB.
const maxPhotoBytes = 10 << 20

// Store writes photos under a media directory and maps them to URLs below a
// base path.
type Store struct {
	dir     string
	baseURL string
}

// NewStore creates a photo store rooted at dir, serving under baseURL
// (typically "/media"). The directory is created if missing.
func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the directory photos are written to, for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save stores one uploaded photo and returns its public URL. The stored
// filename is a fresh UUID with an extension derived from the content type,
// so uploads can never collide or traverse outside the media directory.
func (s *Store) Save(contentType string, r io.Reader) (string, error) {
	ext, err := extensionFor(contentType)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer f.Close()

	// Read one byte past the cap so an oversized upload fails instead of
	// being stored truncated.
	n, err := io.Copy(f, io.LimitReader(r, maxPhotoBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write photo: %w", err)
	}
	if n > maxPhotoBytes {
		os.Remove(path)
		return "", fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, maxPhotoBytes)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("flush photo: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Remove deletes a stored photo given the URL Save returned. Unknown URLs are
// ignored so callers can clean up blindly.
func (s *Store) Remove(photoURL string) error {
	name := strings.TrimPrefix(photoURL, s.baseURL+"/")
	if name == photoURL || name == "" || strings.ContainsAny(name, "/\\") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}

func extensionFor(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	switch mediaType {
	case "image/jpeg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/webp":
		return ".webp", nil
	case "image/gif":
		return ".gif", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, mediaType)
	}
}
