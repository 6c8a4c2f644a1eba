package storage

import (
	"context"
	"io"
	"net/url"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// minioStorage keeps the object key in the folder reference. Download URLs are
// presigned on each Get.
type minioStorage struct {
	MinioClient   *minio.Client
	BucketName    string
	PresignExpiry time.Duration
	Log           *zap.Logger
}

var _ contracts.BlobReader = (*minioStorage)(nil)

func NewMinioStorage(minioClient *minio.Client, bucketName string, presignExpiry time.Duration, logger *zap.Logger) contracts.BlobStorage {
	return &minioStorage{
		MinioClient:   minioClient,
		BucketName:    bucketName,
		PresignExpiry: presignExpiry,
		Log:           logger,
	}
}

func (m *minioStorage) Driver() string {
	return constvars.BlobStorageDriverMinio
}

func (m *minioStorage) Put(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("minioStorage.Put called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, m.BucketName),
		zap.String(constvars.LoggingObjectKey, objectKey),
		zap.Int64(constvars.LoggingFileSizeKey, size),
	)

	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectKey, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioStorage.Put succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)
	return utils.EncodeBlobReference(objectKey), nil
}

func (m *minioStorage) Get(ctx context.Context, reference string) (*models.Blob, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectKey, err := utils.DecodeBlobReference(reference)
	if err != nil {
		return nil, exceptions.ErrBlobNotFound(err, reference)
	}

	info, err := m.MinioClient.StatObject(ctx, m.BucketName, objectKey, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == constvars.MinioErrorCodeNoSuchKey {
			return nil, exceptions.ErrBlobNotFound(err, objectKey)
		}
		return nil, exceptions.ErrMinioStatObject(err, m.BucketName)
	}

	params := url.Values{}
	params.Set(constvars.MinioResponseDisposition, utils.BlobContentDisposition(info.ContentType, objectKey))
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectKey, m.PresignExpiry, params)
	if err != nil {
		return nil, exceptions.ErrMinioPresignObject(err, m.BucketName)
	}

	m.Log.Info("minioStorage.Get succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)
	return &models.Blob{
		ObjectKey:   objectKey,
		ContentType: info.ContentType,
		RedirectURL: presignedURL.String(),
	}, nil
}
