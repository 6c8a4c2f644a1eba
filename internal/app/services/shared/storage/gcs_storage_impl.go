package storage

import (
	"context"
	"io"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
)

type gcsStorage struct {
	Client     *storage.Client
	BucketName string
	Log        *zap.Logger
}

func NewGCSStorage(client *storage.Client, bucketName string, logger *zap.Logger) contracts.BlobStorage {
	return &gcsStorage{
		Client:     client,
		BucketName: bucketName,
		Log:        logger,
	}
}

func (g *gcsStorage) Driver() string {
	return constvars.BlobStorageDriverGCS
}

// Put returns the object's public URL; the bucket is expected to grant read access.
func (g *gcsStorage) Put(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("gcsStorage.Put called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, g.BucketName),
		zap.String(constvars.LoggingObjectKey, objectKey),
		zap.Int64(constvars.LoggingFileSizeKey, size),
	)

	writer := g.Client.Bucket(g.BucketName).Object(objectKey).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()
		return "", exceptions.ErrGCSWriteObject(err, g.BucketName)
	}
	if err := writer.Close(); err != nil {
		return "", exceptions.ErrGCSWriteObject(err, g.BucketName)
	}

	g.Log.Info("gcsStorage.Put succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)
	return utils.BuildPublicObjectURL(constvars.GCSPublicHost, g.BucketName, objectKey), nil
}
