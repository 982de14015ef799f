// Package storage persists uploaded files to a local content directory.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

// LocalFileStore writes uploads under baseDir and serves them as relative
// URLs (/<directory>/<filename>).
type LocalFileStore struct {
	baseDir string
}

func NewLocalFileStore(baseDir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalFileStore{baseDir: baseDir}, nil
}

// Save streams the file to disk under a collision-resistant name:
// <original-base>-<unix-millis>-<uuid><original-ext>.
func (s *LocalFileStore) Save(ctx context.Context, file ports.UploadedFile, directory string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, filepath.FromSlash(directory))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}

	name := uniqueName(file.Name)
	path := filepath.Join(dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file.Content); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	return "/" + directory + "/" + name, nil
}

func uniqueName(original string) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "file"
	}
	return fmt.Sprintf("%s-%d-%s%s", stem, time.Now().UnixMilli(), uuid.NewString(), ext)
}
