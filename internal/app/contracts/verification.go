package contracts

import (
	"context"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/dto/responses"
)

type VerificationUsecase interface {
	SubmitID(ctx context.Context, sessionID, rawID string) (*responses.VerificationState, error)
	Confirm(ctx context.Context, sessionID string) (*responses.VerificationState, error)
	Deny(ctx context.Context, sessionID string) (*responses.VerificationState, error)
	SubmitCode(ctx context.Context, sessionID, code string) (*responses.VerificationState, error)
	Resend(ctx context.Context, sessionID string) (*responses.VerificationState, error)
	Logout(ctx context.Context, sessionID string) error
	Status(ctx context.Context, sessionID string) (*responses.VerificationState, error)
	// AuthenticatedSession returns the session when it has passed code verification.
	AuthenticatedSession(ctx context.Context, sessionID string) (*models.VerificationSession, error)
}
