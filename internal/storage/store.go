// Package storage persists uploaded images on local disk and serves their
// stored paths back under a configured URL prefix.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile       = errors.New("uploaded file is empty")
	ErrUnsupportedType = errors.New("invalid image format, allowed: jpg, png, gif, webp")
	ErrInvalidPath     = errors.New("image path does not reference a stored upload")
)

// allowedImageTypes is the accepted set for every resource on the site.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Store writes uploads under dir and returns paths prefixed with urlPrefix.
// Both come from config; nothing here reads the environment.
type Store struct {
	dir       string
	urlPrefix string
}

func NewStore(dir, urlPrefix string) *Store {
	return &Store{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

// Save validates and writes one uploaded image, returning its stored path
// ("/static/uploads/<name>"). The filename always carries the owner id, a
// timestamp and a random component so distinct uploads never collide on
// disk. Nothing is written when the content type is rejected.
func (s *Store) Save(fh *multipart.FileHeader, ownerID int64) (string, error) {
	if fh.Size == 0 {
		return "", ErrEmptyFile
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	// Sniff the real content type rather than trusting the declared header.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !allowedImageTypes[mimeType] {
		return "", ErrUnsupportedType
	}

	if seeker, ok := file.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return "", fmt.Errorf("rewind upload: %w", err)
		}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	name := fmt.Sprintf("%d_%s_%s%s",
		ownerID,
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		ext,
	)

	absPath := filepath.Join(s.dir, name)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

// Remove deletes the file behind a stored path. A path outside the store or
// a file already gone is not an error.
func (s *Store) Remove(storedPath string) error {
	if storedPath == "" {
		return nil
	}
	name := strings.TrimPrefix(storedPath, s.urlPrefix+"/")
	if name == storedPath {
		return nil
	}
	name = filepath.Base(name)

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// IsStoredPath reports whether p is shaped like a path this store issued:
// relative, under the configured URL prefix. Absolute URLs and foreign
// paths fail; the file itself need not exist.
func (s *Store) IsStoredPath(p string) bool {
	return strings.HasPrefix(p, s.urlPrefix+"/")
}

// Exists reports whether the file behind a stored path is still on disk.
func (s *Store) Exists(storedPath string) bool {
	name := strings.TrimPrefix(storedPath, s.urlPrefix+"/")
	if name == storedPath {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(name)))
	return err == nil
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
