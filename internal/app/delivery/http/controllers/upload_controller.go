package controllers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const uploadFilesFormField = "files"

type UploadController struct {
	Log            *zap.Logger
	UploadUsecase  contracts.UploadUsecase
	InternalConfig *config.InternalConfig
}

func NewUploadController(logger *zap.Logger, uploadUsecase contracts.UploadUsecase, internalConfig *config.InternalConfig) *UploadController {
	return &UploadController{
		Log:            logger,
		UploadUsecase:  uploadUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UploadController) UploadDocuments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := requestIDFromContext(r)

	sessionID, ok := sessionIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(ctrl.InternalConfig.App.MaxUploadSizeInMB << 20); err != nil {
		ctrl.Log.Error("Failed to parse multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "multipart parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	request := &requests.UploadDocuments{
		Source: r.FormValue("source"),
		Title:  r.FormValue("title"),
		Type:   r.FormValue("type"),
		Notes:  r.FormValue("notes"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("Upload form validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	source := models.UploadSource(request.Source)
	if source == "" {
		source = models.UploadSourceFilePicker
	}

	upload := &models.PendingUpload{
		Title: request.Title,
		Type:  models.FolderItemType(request.Type),
		Notes: request.Notes,
	}
	upload.Select(source, pendingFiles(r.MultipartForm.File[uploadFilesFormField])...)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	response, err := ctrl.UploadUsecase.Submit(ctx, sessionID, upload)
	if err != nil {
		ctrl.Log.Error("Failed to upload documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingItemsCountKey, len(upload.Files)),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Documents uploaded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingItemsCountKey, response.UploadedCount),
		zap.String(constvars.LoggingSourceKey, string(source)),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.UploadSuccessMessage, response.UploadedCount), response)
}

func pendingFiles(headers []*multipart.FileHeader) []models.PendingFile {
	files := make([]models.PendingFile, 0, len(headers))
	for _, header := range headers {
		contentType := header.Header.Get(constvars.HeaderContentType)
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		files = append(files, models.PendingFile{
			FileName:    header.Filename,
			ContentType: contentType,
			Size:        header.Size,
			Open: func() (io.ReadCloser, error) {
				return header.Open()
			},
		})
	}
	return files
}
