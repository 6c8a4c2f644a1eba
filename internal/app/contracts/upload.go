package contracts

import (
	"context"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/dto/responses"
)

type UploadUsecase interface {
	Submit(ctx context.Context, sessionID string, upload *models.PendingUpload) (*responses.UploadDocuments, error)
}
