package contracts

import (
	"context"
	"io"
	"patient-records-service/internal/app/models"
)

// BlobStorage pushes one object and returns the reference stored in the
// patient's folder.
type BlobStorage interface {
	Put(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) (string, error)
	Driver() string
}

// BlobReader resolves a folder reference for the download route. Storages whose
// references are already public URLs do not implement it.
type BlobReader interface {
	Get(ctx context.Context, reference string) (*models.Blob, error)
}
