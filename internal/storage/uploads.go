// Package storage persists ticket attachments to a local directory. Uploads
// are written durably before the ticket record references them; the URL path
// returned stays valid across restarts.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/pkg/util"
)

// URLPrefix is the public route attachments are served under.
const URLPrefix = "/uploads"

// Uploads stores attachment files on local disk.
type Uploads struct {
	dir     string
	maxSize int64
}

// NewUploads prepares the upload directory.
func NewUploads(cfg config.StorageConfig) (*Uploads, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Uploads{dir: cfg.UploadDir, maxSize: cfg.MaxUploadSize}, nil
}

// Dir returns the directory files are stored in, for static serving.
func (u *Uploads) Dir() string {
	return u.dir
}

// Save writes the uploaded file under a generated name and returns the URL
// path to record on the ticket.
func (u *Uploads) Save(header *multipart.FileHeader) (string, error) {
	if u.maxSize > 0 && header.Size > u.maxSize {
		return "", util.NewValidationError("attachment too large", map[string]any{"max_bytes": u.maxSize})
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + sanitizeExt(header.Filename)
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create attachment file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}
	return URLPrefix + "/" + name, nil
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '.' {
			return ""
		}
	}
	return ext
}
