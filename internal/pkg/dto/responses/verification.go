package responses

import (
	"patient-records-service/internal/app/models"
	"time"
)

// VerificationState is returned by every verification action so the browser
// can render the panel for the current step.
type VerificationState struct {
	Step          models.VerificationStep `json:"step"`
	PatientName   string                  `json:"patient_name,omitempty"`
	Phone         string                  `json:"phone,omitempty"`
	CodeExpiresAt *time.Time              `json:"code_expires_at,omitempty"`
	Message       string                  `json:"-"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
