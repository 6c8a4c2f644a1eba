package storage

import (
	"context"
	"io"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type localBlob struct {
	objectKey   string
	contentType string
	content     []byte
}

// LocalStorage keeps uploaded bytes in process memory and hands out
// "blob:<id>" references. It is used when no object storage is configured.
type LocalStorage struct {
	mu    sync.RWMutex
	blobs map[string]localBlob
	Log   *zap.Logger
}

func NewLocalStorage(logger *zap.Logger) *LocalStorage {
	return &LocalStorage{
		blobs: make(map[string]localBlob),
		Log:   logger,
	}
}

var (
	_ contracts.BlobStorage = (*LocalStorage)(nil)
	_ contracts.BlobReader  = (*LocalStorage)(nil)
)

func (s *LocalStorage) Driver() string {
	return constvars.BlobStorageDriverLocal
}

func (s *LocalStorage) Put(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	data, err := io.ReadAll(content)
	if err != nil {
		return "", exceptions.ErrLocalStorageRead(err)
	}

	blobID := uuid.NewString()
	s.mu.Lock()
	s.blobs[blobID] = localBlob{
		objectKey:   objectKey,
		contentType: contentType,
		content:     data,
	}
	s.mu.Unlock()

	s.Log.Info("LocalStorage.Put succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
		zap.Int(constvars.LoggingFileSizeKey, len(data)),
	)
	return constvars.BlobReferenceHead + blobID, nil
}

// Get accepts either the bare blob id or the full "blob:<id>" reference.
func (s *LocalStorage) Get(ctx context.Context, reference string) (*models.Blob, error) {
	blobID := strings.TrimPrefix(reference, constvars.BlobReferenceHead)

	s.mu.RLock()
	blob, ok := s.blobs[blobID]
	s.mu.RUnlock()
	if !ok {
		return nil, exceptions.ErrBlobNotFound(nil, blobID)
	}
	return &models.Blob{
		ObjectKey:   blob.objectKey,
		ContentType: blob.contentType,
		Content:     blob.content,
	}, nil
}
