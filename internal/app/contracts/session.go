package contracts

import (
	"context"
	"patient-records-service/internal/app/models"
)

type SessionRepository interface {
	// Get returns nil, nil when no session is stored under sessionID.
	Get(ctx context.Context, sessionID string) (*models.VerificationSession, error)
	Save(ctx context.Context, session *models.VerificationSession) error
	Delete(ctx context.Context, sessionID string) error
}
