package uploads

import (
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxSize is the largest accepted upload (5MB).
const MaxSize = 5 << 20

// StaticPath is the URL prefix uploaded images are served from.
const StaticPath = "/uploads"

// ErrInvalidFile is returned when an upload exceeds the size limit or is not
// an accepted image type.
var ErrInvalidFile = errors.New("invalid upload")

var allowedExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// Store saves and removes uploaded project images under a single directory.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save validates and stores an uploaded image, returning its public URL path.
func (s *Store) Save(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxSize {
		return "", fmt.Errorf("%w: file exceeds 5MB", ErrInvalidFile)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return "", fmt.Errorf("%w: only jpeg, jpg, png and gif are accepted", ErrInvalidFile)
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !allowedTypes[ct] {
		return "", fmt.Errorf("%w: unexpected content type %s", ErrInvalidFile, ct)
	}

	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(fh, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path.Join(StaticPath, name), nil
}

// Remove deletes the file behind an image URL produced by Save. A missing
// file is not an error.
func (s *Store) Remove(imageURL string) error {
	name := path.Base(imageURL)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Register mounts the static file route for stored images.
func (s *Store) Register(r *gin.Engine) {
	r.Static(StaticPath, s.dir)
}
