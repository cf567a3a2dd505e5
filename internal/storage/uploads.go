// Package storage saves uploaded images to a fixed directory with a
// sanitized, collision-free filename and an extension allow-list.
package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrDisallowedExtension = errors.New("file extension not allowed")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type Saver struct {
	dir string
}

// NewSaver creates the target directory if it does not exist yet.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Saver{dir: dir}, nil
}

// Allowed reports whether the filename carries an accepted image extension.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Save writes the upload under the saver's directory and returns the stored
// relative path. The caller decides what a disallowed extension means; here
// it is ErrDisallowedExtension, not a write.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", ErrDisallowedExtension
	}

	if !Allowed(fh.Filename) {
		return "", ErrDisallowedExtension
	}

	name := sanitizeFilename(fh.Filename)

	// uuid prefix keeps concurrent uploads of the same filename apart.
	dst := filepath.Join(s.dir, uuid.NewString()[:8]+"_"+name)

	src, err := fh.Open()

	if err != nil {
		return "", err
	}

	defer src.Close()

	out, err := os.Create(dst)

	if err != nil {
		return "", err
	}

	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}

	return dst, nil
}

// sanitizeFilename strips any path components and reduces the name to a
// conservative character set.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	out := strings.Trim(b.String(), "._-")

	if out == "" {
		out = "upload"
	}

	return out
}
