package controllers

import (
	"context"
	"errors"
	"net/http"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func requestIDFromContext(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// sessionIDFromContext writes the error response itself when the session
// middleware did not run for the request.
func sessionIDFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if !ok || sessionID == "" {
		log.Error("Session ID missing from context",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromContext(r)),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingSessionID(nil))
		return "", false
	}
	return sessionID, true
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
