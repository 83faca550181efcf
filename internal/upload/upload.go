package upload

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path under which saved images are served.
const PublicPrefix = "/uploads"

var dataURLPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// Store writes product images to a local directory and hands back their
// public URL path.
type Store struct {
	dir string
}

// NewStore creates an image store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory images are written to, for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// SaveDataURL decodes a base64 data URL (or bare base64 payload), writes it
// under a fresh UUID name and returns the public path, e.g. /uploads/<id>.png.
func (s *Store) SaveDataURL(data string) (string, error) {
	payload := dataURLPrefix.ReplaceAllString(strings.TrimSpace(data), "")

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + ".png"
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return PublicPrefix + "/" + name, nil
}
