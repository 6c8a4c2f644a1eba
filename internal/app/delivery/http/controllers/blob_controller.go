package controllers

import (
	"net/http"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BlobController serves uploads back to the patient who owns them.
type BlobController struct {
	Log                 *zap.Logger
	VerificationUsecase contracts.VerificationUsecase
	BlobReader          contracts.BlobReader
}

func NewBlobController(logger *zap.Logger, verificationUsecase contracts.VerificationUsecase, blobReader contracts.BlobReader) *BlobController {
	return &BlobController{
		Log:                 logger,
		VerificationUsecase: verificationUsecase,
		BlobReader:          blobReader,
	}
}

func (ctrl *BlobController) GetBlob(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	blobID := chi.URLParam(r, constvars.URLParamBlobID)

	session, err := ctrl.VerificationUsecase.AuthenticatedSession(r.Context(), sessionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	blob, err := ctrl.BlobReader.Get(r.Context(), blobID)
	if err == nil && !strings.HasPrefix(blob.ObjectKey, utils.PatientObjectPrefix(session.Candidate.IDNumber)) {
		// Someone else's upload reads as missing.
		err = exceptions.ErrBlobNotFound(nil, blobID)
	}
	if err != nil {
		ctrl.Log.Error("Failed to read blob",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromContext(r)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String("blob_id", blobID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderXContentTypeOptions, constvars.NoSniff)
	if blob.RedirectURL != "" {
		http.Redirect(w, r, blob.RedirectURL, http.StatusFound)
		return
	}

	w.Header().Set(constvars.HeaderContentType, blob.ContentType)
	w.Header().Set(constvars.HeaderContentDisposition, utils.BlobContentDisposition(blob.ContentType, blob.ObjectKey))
	w.Header().Set(constvars.HeaderContentLength, strconv.Itoa(len(blob.Content)))
	w.WriteHeader(constvars.StatusOK)
	w.Write(blob.Content)
}
