package models

import "time"

type VerificationStep string

const (
	StepAwaitingID           VerificationStep = "awaiting_id"
	StepAwaitingConfirmation VerificationStep = "awaiting_confirmation"
	StepAwaitingCode         VerificationStep = "awaiting_code"
	StepAuthenticated        VerificationStep = "authenticated"
)

// VerificationSession is the per-browser state of the identity verification
// flow. Only one candidate and one code are live at a time.
type VerificationSession struct {
	SessionID        string           `json:"session_id"`
	Step             VerificationStep `json:"step"`
	Candidate        *Patient         `json:"candidate,omitempty"`
	CodeHash         string           `json:"code_hash,omitempty"`
	CodeExpiresAt    *time.Time       `json:"code_expires_at,omitempty"`
	RecordsVisibleAt *time.Time       `json:"records_visible_at,omitempty"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func NewVerificationSession(sessionID string) *VerificationSession {
	return &VerificationSession{
		SessionID: sessionID,
		Step:      StepAwaitingID,
	}
}

// Reset drops the candidate and any code, returning the session to the first step.
func (s *VerificationSession) Reset() {
	s.Step = StepAwaitingID
	s.Candidate = nil
	s.CodeHash = ""
	s.CodeExpiresAt = nil
	s.RecordsVisibleAt = nil
}

func (s *VerificationSession) IsCodeExpired(now time.Time) bool {
	return s.CodeExpiresAt != nil && now.After(*s.CodeExpiresAt)
}

func (s *VerificationSession) IsAuthenticated() bool {
	return s.Step == StepAuthenticated && s.Candidate != nil
}
