package contracts

import (
	"context"
	"io"
	"patient-records-service/internal/app/models"
)

type RecordUsecase interface {
	GetRecords(ctx context.Context, sessionID string) (*models.RecordView, error)
	RenderHTML(w io.Writer, view *models.RecordView) error
}
