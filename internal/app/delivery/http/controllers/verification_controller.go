package controllers

import (
	"context"
	"net/http"
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type VerificationController struct {
	Log                 *zap.Logger
	VerificationUsecase contracts.VerificationUsecase
	InternalConfig      *config.InternalConfig
}

func NewVerificationController(logger *zap.Logger, verificationUsecase contracts.VerificationUsecase, internalConfig *config.InternalConfig) *VerificationController {
	return &VerificationController{
		Log:                 logger,
		VerificationUsecase: verificationUsecase,
		InternalConfig:      internalConfig,
	}
}

type verificationAction func(ctx context.Context, sessionID string) (*responses.VerificationState, error)

// serve runs one verification action for the session of the request and
// writes the resulting state.
func (ctrl *VerificationController) serve(w http.ResponseWriter, r *http.Request, name string, action verificationAction) {
	start := time.Now()
	requestID := requestIDFromContext(r)

	sessionID, ok := sessionIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	state, err := action(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("Verification action failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("action", name),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Debug("Verification action succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("action", name),
		zap.String(constvars.LoggingVerificationStep, string(state.Step)),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	message := state.Message
	if message == "" {
		message = constvars.VerificationStatusMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, state)
}

func (ctrl *VerificationController) SubmitID(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitID)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromContext(r)),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.serve(w, r, "submit_id", func(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
		return ctrl.VerificationUsecase.SubmitID(ctx, sessionID, request.IDNumber)
	})
}

func (ctrl *VerificationController) Confirm(w http.ResponseWriter, r *http.Request) {
	ctrl.serve(w, r, "confirm", ctrl.VerificationUsecase.Confirm)
}

func (ctrl *VerificationController) Deny(w http.ResponseWriter, r *http.Request) {
	ctrl.serve(w, r, "deny", ctrl.VerificationUsecase.Deny)
}

func (ctrl *VerificationController) SubmitCode(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitCode)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromContext(r)),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.serve(w, r, "submit_code", func(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
		return ctrl.VerificationUsecase.SubmitCode(ctx, sessionID, request.Code)
	})
}

func (ctrl *VerificationController) Resend(w http.ResponseWriter, r *http.Request) {
	ctrl.serve(w, r, "resend", ctrl.VerificationUsecase.Resend)
}

func (ctrl *VerificationController) Status(w http.ResponseWriter, r *http.Request) {
	ctrl.serve(w, r, "status", ctrl.VerificationUsecase.Status)
}

// Logout also serves as the reset of the flow: the session is dropped from any step.
func (ctrl *VerificationController) Logout(w http.ResponseWriter, r *http.Request) {
	ctrl.serve(w, r, "logout", func(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
		if err := ctrl.VerificationUsecase.Logout(ctx, sessionID); err != nil {
			return nil, err
		}
		return &responses.VerificationState{
			Step:    models.StepAwaitingID,
			Message: constvars.LogoutSuccessMessage,
		}, nil
	})
}
