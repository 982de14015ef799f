package ports

import (
	"context"
	"io"
)

// UploadedFile is a transport-decoded multipart file part.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileStore persists uploaded files and returns the relative URL under
// which they are served. The store generates a collision-resistant name;
// the original extension is preserved.
type FileStore interface {
	Save(ctx context.Context, file UploadedFile, directory string) (string, error)
}
