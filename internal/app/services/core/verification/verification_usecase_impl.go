package verification

import (
	"context"
	"errors"
	"fmt"
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/app/services/shared/locker"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	errIdentifierEmpty = errors.New("identifier is empty")
	errCodeEmpty       = errors.New("code is empty")
	errCodeMismatch    = errors.New("code does not match")
)

type verificationUsecase struct {
	SessionRepository contracts.SessionRepository
	Locker            contracts.LockerService
	PatientUsecase    contracts.PatientUsecase
	Validator         contracts.IdentifierValidator
	Notifier          contracts.OTPNotifier
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger

	now         func() time.Time
	generateOTP func() (string, error)
}

func NewVerificationUsecase(
	sessionRepository contracts.SessionRepository,
	lockerService contracts.LockerService,
	patientUsecase contracts.PatientUsecase,
	validator contracts.IdentifierValidator,
	notifier contracts.OTPNotifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.VerificationUsecase {
	return &verificationUsecase{
		SessionRepository: sessionRepository,
		Locker:            lockerService,
		PatientUsecase:    patientUsecase,
		Validator:         validator,
		Notifier:          notifier,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
		generateOTP:       utils.GenerateOTP,
	}
}

func (uc *verificationUsecase) SubmitID(ctx context.Context, sessionID, rawID string) (*responses.VerificationState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("verificationUsecase.SubmitID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	var state *responses.VerificationState
	err := uc.mutate(ctx, sessionID, func(session *models.VerificationSession) error {
		if session.Step != models.StepAwaitingID {
			return exceptions.ErrWrongStep(nil, string(session.Step), string(models.StepAwaitingID))
		}
		if strings.TrimSpace(rawID) == "" {
			return exceptions.ErrIdentifierEmpty(errIdentifierEmpty)
		}

		patientID, err := uc.Validator.Validate(rawID)
		if err != nil {
			return err
		}

		patient, err := uc.PatientUsecase.Lookup(ctx, patientID)
		if err != nil {
			return err
		}

		session.Candidate = patient
		session.Step = models.StepAwaitingConfirmation
		state = uc.buildState(session, fmt.Sprintf(constvars.PatientFoundMessage, patient.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("verificationUsecase.SubmitID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVerificationStep, string(state.Step)),
	)
	return state, nil
}

func (uc *verificationUsecase) Confirm(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("verificationUsecase.Confirm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	var state *responses.VerificationState
	err := uc.mutate(ctx, sessionID, func(session *models.VerificationSession) error {
		if session.Step != models.StepAwaitingConfirmation || session.Candidate == nil {
			return exceptions.ErrWrongStep(nil, string(session.Step), string(models.StepAwaitingConfirmation))
		}

		code, err := uc.issueCode(ctx, session)
		if err != nil {
			return err
		}

		session.Step = models.StepAwaitingCode
		state = uc.buildState(session, uc.codeSentMessage(constvars.OTPSentMessage, session.Candidate.Phone, code))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *verificationUsecase) Deny(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("verificationUsecase.Deny called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	var state *responses.VerificationState
	err := uc.mutate(ctx, sessionID, func(session *models.VerificationSession) error {
		if session.Step != models.StepAwaitingConfirmation {
			return exceptions.ErrWrongStep(nil, string(session.Step), string(models.StepAwaitingConfirmation))
		}

		session.Reset()
		state = uc.buildState(session, constvars.PatientDeniedMessage)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *verificationUsecase) SubmitCode(ctx context.Context, sessionID, code string) (*responses.VerificationState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("verificationUsecase.SubmitCode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	var state *responses.VerificationState
	err := uc.mutate(ctx, sessionID, func(session *models.VerificationSession) error {
		if session.Step != models.StepAwaitingCode {
			return exceptions.ErrWrongStep(nil, string(session.Step), string(models.StepAwaitingCode))
		}

		code = strings.TrimSpace(code)
		if code == "" {
			return exceptions.ErrOTPEmpty(errCodeEmpty)
		}

		now := uc.now()
		if session.CodeExpiresAt == nil || session.IsCodeExpired(now) {
			return exceptions.ErrOTPExpired(nil)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(session.CodeHash), []byte(code)); err != nil {
			return exceptions.ErrOTPInvalid(errCodeMismatch)
		}

		visibleAt := now.Add(uc.InternalConfig.App.RecordsRevealDelay())
		session.Step = models.StepAuthenticated
		session.CodeHash = ""
		session.CodeExpiresAt = nil
		session.RecordsVisibleAt = &visibleAt
		state = uc.buildState(session, constvars.OTPVerifiedMessage)
		return nil
	})
	if err != nil {
		uc.Log.Info("verificationUsecase.SubmitCode rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("verificationUsecase.SubmitCode succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return state, nil
}

// Resend replaces the live code; the previous one stops matching immediately.
func (uc *verificationUsecase) Resend(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("verificationUsecase.Resend called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	var state *responses.VerificationState
	err := uc.mutate(ctx, sessionID, func(session *models.VerificationSession) error {
		if session.Step != models.StepAwaitingCode || session.Candidate == nil {
			return exceptions.ErrWrongStep(nil, string(session.Step), string(models.StepAwaitingCode))
		}

		code, err := uc.issueCode(ctx, session)
		if err != nil {
			return err
		}

		state = uc.buildState(session, uc.codeSentMessage(constvars.OTPResentMessage, session.Candidate.Phone, code))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Logout drops every session field. It is accepted from any step, which also
// makes it the reset path of the flow.
func (uc *verificationUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("verificationUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	lockValue, err := locker.Acquire(ctx, uc.Locker, lockKey(sessionID), uc.InternalConfig.App.SessionLockTTL())
	if err != nil {
		return err
	}
	defer uc.unlock(ctx, sessionID, lockValue)

	return uc.SessionRepository.Delete(ctx, sessionID)
}

func (uc *verificationUsecase) Status(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	session, err := uc.SessionRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = models.NewVerificationSession(sessionID)
	}
	return uc.buildState(session, constvars.VerificationStatusMessage), nil
}

func (uc *verificationUsecase) AuthenticatedSession(ctx context.Context, sessionID string) (*models.VerificationSession, error) {
	session, err := uc.SessionRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.IsAuthenticated() {
		return nil, exceptions.ErrNotAuthenticated(nil)
	}
	return session, nil
}

// mutate loads the session under its lock, applies fn and saves the result.
// Nothing is saved when fn fails, so rejected actions leave the step unchanged.
func (uc *verificationUsecase) mutate(ctx context.Context, sessionID string, fn func(session *models.VerificationSession) error) error {
	lockValue, err := locker.Acquire(ctx, uc.Locker, lockKey(sessionID), uc.InternalConfig.App.SessionLockTTL())
	if err != nil {
		return err
	}
	defer uc.unlock(ctx, sessionID, lockValue)

	session, err := uc.SessionRepository.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		session = models.NewVerificationSession(sessionID)
	}

	if err := fn(session); err != nil {
		return err
	}

	session.UpdatedAt = uc.now()
	return uc.SessionRepository.Save(ctx, session)
}

func (uc *verificationUsecase) unlock(ctx context.Context, sessionID, lockValue string) {
	if err := uc.Locker.Unlock(context.WithoutCancel(ctx), lockKey(sessionID), lockValue); err != nil {
		uc.Log.Warn("verificationUsecase.unlock failed",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}
}

// issueCode generates, hashes and delivers a fresh code, then overwrites the
// one held by the session.
func (uc *verificationUsecase) issueCode(ctx context.Context, session *models.VerificationSession) (string, error) {
	code, err := uc.generateOTP()
	if err != nil {
		return "", exceptions.ErrOTPGenerate(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), uc.InternalConfig.App.OTPHashCost)
	if err != nil {
		return "", exceptions.ErrOTPHash(err)
	}

	expiresAt := uc.now().Add(uc.InternalConfig.App.OTPTTL())
	if err := uc.Notifier.SendOTP(ctx, session.Candidate.Phone, code, expiresAt); err != nil {
		return "", err
	}

	session.CodeHash = string(hash)
	session.CodeExpiresAt = &expiresAt
	return code, nil
}

func (uc *verificationUsecase) codeSentMessage(format, phone, code string) string {
	message := fmt.Sprintf(format, phone)
	if uc.InternalConfig.App.OTPDemoEcho {
		message += fmt.Sprintf(constvars.OTPDemoSuffixMessage, code)
	}
	return message
}

func (uc *verificationUsecase) buildState(session *models.VerificationSession, message string) *responses.VerificationState {
	state := &responses.VerificationState{
		Step:          session.Step,
		CodeExpiresAt: session.CodeExpiresAt,
		Message:       message,
	}
	if session.Candidate != nil {
		state.PatientName = session.Candidate.Name
		state.Phone = session.Candidate.Phone
	}
	return state
}

func lockKey(sessionID string) string {
	return constvars.RedisLockKeyPrefix + sessionID
}
