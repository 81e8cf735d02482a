package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// UploadService stores uploaded images under the public uploads directory.
// Stored values are public paths like "uploads/product-...-name.png".
type UploadService struct {
	dir string // filesystem directory, usually "./uploads"
}

func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// Save writes an uploaded file under a sanitized, uniquified name and
// returns its public path. The prefix is a type tag ("product-", "logo-",
// "hero-", "payment-", "favicon-").
func (s *UploadService) Save(fh *multipart.FileHeader, prefix string) (string, error) {
	if fh == nil {
		return "", nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := UploadFilename(prefix, filepath.Base(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("uploads/%s", name), nil
}

// Remove deletes a previously stored file. Failures are swallowed: a stale
// file on disk is harmless, a failed admin action is not.
func (s *UploadService) Remove(publicPath string) {
	name, ok := strings.CutPrefix(publicPath, "uploads/")
	if !ok || name == "" || strings.Contains(name, "..") {
		return
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Printf("uploads: could not remove %s: %v", publicPath, err)
	}
}
