package controllers

import (
	"bytes"
	"context"
	"net/http"
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type RecordController struct {
	Log            *zap.Logger
	RecordUsecase  contracts.RecordUsecase
	InternalConfig *config.InternalConfig
}

func NewRecordController(logger *zap.Logger, recordUsecase contracts.RecordUsecase, internalConfig *config.InternalConfig) *RecordController {
	return &RecordController{
		Log:            logger,
		RecordUsecase:  recordUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *RecordController) GetRecords(w http.ResponseWriter, r *http.Request) {
	view, ok := ctrl.fetch(w, r)
	if !ok {
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordsRetrievedMessage, view)
}

func (ctrl *RecordController) GetRecordsHTML(w http.ResponseWriter, r *http.Request) {
	view, ok := ctrl.fetch(w, r)
	if !ok {
		return
	}

	var page bytes.Buffer
	if err := ctrl.RecordUsecase.RenderHTML(&page, view); err != nil {
		ctrl.Log.Error("Failed to render records page",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromContext(r)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	w.Write(page.Bytes())
}

func (ctrl *RecordController) fetch(w http.ResponseWriter, r *http.Request) (*models.RecordView, bool) {
	start := time.Now()
	requestID := requestIDFromContext(r)

	sessionID, ok := sessionIDFromContext(ctrl.Log, w, r)
	if !ok {
		return nil, false
	}

	// The usecase may hold the request until the reveal time.
	timeout := ctrl.InternalConfig.App.RequestTimeout() + ctrl.InternalConfig.App.RecordsRevealDelay()
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	view, err := ctrl.RecordUsecase.GetRecords(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("Failed to get records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return nil, false
	}
	return view, true
}
