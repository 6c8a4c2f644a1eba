package uploads

import (
	"context"
	"fmt"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/app/services/core/records"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type uploadUsecase struct {
	VerificationUsecase contracts.VerificationUsecase
	PatientUsecase      contracts.PatientUsecase
	BlobStorage         contracts.BlobStorage
	Log                 *zap.Logger

	now func() time.Time
}

func NewUploadUsecase(
	verificationUsecase contracts.VerificationUsecase,
	patientUsecase contracts.PatientUsecase,
	blobStorage contracts.BlobStorage,
	logger *zap.Logger,
) contracts.UploadUsecase {
	return &uploadUsecase{
		VerificationUsecase: verificationUsecase,
		PatientUsecase:      patientUsecase,
		BlobStorage:         blobStorage,
		Log:                 logger,
		now:                 time.Now,
	}
}

// Submit stores every pending file, then appends the resulting items to the
// folder in one update. A file whose storage fails is left out of the batch;
// a failed append leaves the folder as it was.
func (uc *uploadUsecase) Submit(ctx context.Context, sessionID string, upload *models.PendingUpload) (*responses.UploadDocuments, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("uploadUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingItemsCountKey, len(upload.Files)),
	)

	session, err := uc.VerificationUsecase.AuthenticatedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	patientID := session.Candidate.IDNumber

	if len(upload.Files) == 0 {
		return nil, exceptions.ErrUploadNoFiles(nil)
	}
	title := strings.TrimSpace(upload.Title)
	if title == "" {
		return nil, exceptions.ErrUploadTitleEmpty(nil)
	}
	if len(upload.Sources()) > 1 {
		return nil, exceptions.ErrUploadMixedSources(nil)
	}
	itemType := upload.Type
	if itemType == "" {
		itemType = models.FolderItemTypeDocument
	}
	if !itemType.IsValid() {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("unknown folder item type %q", itemType))
	}
	notes := strings.TrimSpace(upload.Notes)

	items := make([]models.FolderItem, 0, len(upload.Files))
	for _, file := range upload.Files {
		item, err := uc.storeFile(ctx, patientID, file)
		if err != nil {
			uc.Log.Warn("uploadUsecase.Submit skipping file after storage fault",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFileNameKey, file.FileName),
				zap.String(constvars.LoggingStoreDriverKey, uc.BlobStorage.Driver()),
				zap.Error(err),
			)
			continue
		}
		item.Type = itemType
		item.Title = title
		item.Notes = notes
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, exceptions.ErrUploadNothingStored(nil)
	}

	if err := uc.PatientUsecase.AppendItems(ctx, patientID, items); err != nil {
		return nil, err
	}

	patient, err := uc.PatientUsecase.Lookup(ctx, patientID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("uploadUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingItemsCountKey, len(items)),
	)
	return &responses.UploadDocuments{
		UploadedCount: len(items),
		Previews:      Previews(upload.Files),
		Records:       records.Render(patient),
	}, nil
}

func (uc *uploadUsecase) storeFile(ctx context.Context, patientID string, file models.PendingFile) (models.FolderItem, error) {
	content, err := file.Open()
	if err != nil {
		return models.FolderItem{}, err
	}
	defer content.Close()

	now := uc.now()
	reference, err := uc.BlobStorage.Put(ctx, utils.GenerateObjectKey(patientID, file.FileName, now), file.ContentType, content, file.Size)
	if err != nil {
		return models.FolderItem{}, err
	}

	return models.FolderItem{
		Content:    reference,
		UploadedAt: now.UTC().Format(time.RFC3339),
		FileName:   file.FileName,
		FileSize:   file.Size,
	}, nil
}

// Previews describes the pending files the way the upload form lists them.
func Previews(files []models.PendingFile) []models.FilePreview {
	previews := make([]models.FilePreview, 0, len(files))
	for _, file := range files {
		kind := "document"
		if strings.HasPrefix(file.ContentType, "image/") {
			kind = "image"
		}
		previews = append(previews, models.FilePreview{
			FileName: file.FileName,
			SizeMB:   utils.FormatFileSizeMB(file.Size),
			Kind:     kind,
		})
	}
	return previews
}
