// Package storage persists uploaded avatar images on local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spotlighthub/spotlight-api/internal/constants"
)

// ErrUnsupportedType is returned for uploads outside the extension allow-list.
var ErrUnsupportedType = errors.New("storage: unsupported file type")

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

// AvatarStore writes avatar files under a configured directory and maps
// them to URL paths served by the API.
type AvatarStore struct {
	dir string
}

// NewAvatarStore creates the upload directory if needed.
func NewAvatarStore(dir string) (*AvatarStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &AvatarStore{dir: dir}, nil
}

// Dir returns the directory avatars are stored in.
func (s *AvatarStore) Dir() string {
	return s.dir
}

// Save stores an uploaded avatar as {userID}_{random}.{ext} and returns
// the URL path it will be served from.
func (s *AvatarStore) Save(userID uint, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedType
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d_%s.%s", userID, uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write avatar file: %w", err)
	}

	return constants.AvatarURLPrefix + name, nil
}

// DeleteIfLocal removes the file behind avatarURL when it points into the
// local avatar namespace. Failures are logged and swallowed; leftover
// files are acceptable, a blocked request is not.
func (s *AvatarStore) DeleteIfLocal(avatarURL string) {
	if !strings.HasPrefix(avatarURL, constants.AvatarURLPrefix) {
		return
	}

	// Base strips any traversal a stored URL could carry.
	name := filepath.Base(strings.TrimPrefix(avatarURL, constants.AvatarURLPrefix))
	if name == "." || name == string(filepath.Separator) {
		return
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove avatar file %s: %v", name, err)
	}
}
